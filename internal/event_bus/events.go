package event_bus

const (
	TransactionCreatedEvent    EventType = "transaction.created"
	TransactionDeletedEvent    EventType = "transaction.deleted"
	RecurringMaterializedEvent EventType = "recurring.materialized"
)

type TransactionCreated struct {
	Id          string
	Date        string
	Label       string
	AmountCents int64
	Type        string
	Category    string
}

type TransactionDeleted struct {
	Id string
}

// RecurringMaterialized is published once per materialization run of a
// recurring item, after lastGenerated has been advanced.
type RecurringMaterialized struct {
	ItemId        string
	Generated     int
	LastGenerated string
}
