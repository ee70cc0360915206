package importer

import "context"

type (
	// Sheet is one named table of raw rows from a document.
	Sheet struct {
		Name string
		Rows []Row
	}

	// DocumentSource is the port to a spreadsheet parser. An implementation
	// reads one document and yields its sheets in document order.
	DocumentSource interface {
		Sheets(ctx context.Context) ([]Sheet, error)
	}
)
