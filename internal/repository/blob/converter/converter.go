package converter

import "github.com/inventory-pro/backend/internal/domain"

func ProductsToModels(products []domain.Product) []ProductModel {
	models := make([]ProductModel, 0, len(products))
	for _, p := range products {
		models = append(models, ProductModel{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Stock:        p.Stock,
			Threshold:    p.Threshold,
			CostPrice:    p.CostPrice,
			SellingPrice: p.SellingPrice,
			Supplier:     p.Supplier,
			CreatedAt:    p.CreatedAt,
		})
	}

	return models
}

func ProductsToEntities(models []ProductModel) []domain.Product {
	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, domain.Product{
			ID:           m.ID,
			Name:         m.Name,
			Category:     m.Category,
			Stock:        m.Stock,
			Threshold:    m.Threshold,
			CostPrice:    m.CostPrice,
			SellingPrice: m.SellingPrice,
			Supplier:     m.Supplier,
			CreatedAt:    m.CreatedAt,
		})
	}

	return products
}

func OrdersToModels(orders []domain.PurchaseOrder) []OrderModel {
	models := make([]OrderModel, 0, len(orders))
	for _, po := range orders {
		items := make([]OrderItemModel, 0, len(po.Items))
		for _, it := range po.Items {
			items = append(items, OrderItemModel{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Cost:        it.Cost,
			})
		}

		models = append(models, OrderModel{
			ID:           po.ID,
			PONumber:     po.PONumber,
			Items:        items,
			TotalCost:    po.TotalCost,
			Status:       string(po.Status),
			DeliveryDate: po.DeliveryDate,
			Notes:        po.Notes,
			CreatedAt:    po.CreatedAt,
			ReceivedAt:   po.ReceivedAt,
		})
	}

	return models
}

func OrdersToEntities(models []OrderModel) []domain.PurchaseOrder {
	orders := make([]domain.PurchaseOrder, 0, len(models))
	for _, m := range models {
		items := make([]domain.OrderItem, 0, len(m.Items))
		for _, it := range m.Items {
			items = append(items, domain.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Cost:        it.Cost,
			})
		}

		orders = append(orders, domain.PurchaseOrder{
			ID:           m.ID,
			PONumber:     m.PONumber,
			Items:        items,
			TotalCost:    m.TotalCost,
			Status:       domain.OrderStatus(m.Status),
			DeliveryDate: m.DeliveryDate,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt,
			ReceivedAt:   m.ReceivedAt,
		})
	}

	return orders
}
