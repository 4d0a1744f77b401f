package handler

import (
	"tenant-ledger/internal/attachment"
	"tenant-ledger/internal/ledger"
	"tenant-ledger/pkg/database"
)

var attachments *attachment.Store

// Init wires the handlers to the attachment store. The database is reached
// through the global connection; handlers build a ledger per request.
func Init(store *attachment.Store) {
	attachments = store
}

func getLedger() *ledger.Ledger {
	return ledger.New(database.GetDB())
}
