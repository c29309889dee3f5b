package domain

// Snapshot is the full persisted state: the three collections owned by the
// in-memory state container. It is also the unit of backup and restore.
type Snapshot struct {
	Products       []Product
	Categories     []string
	PurchaseOrders []PurchaseOrder
}
