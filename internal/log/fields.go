package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldProject    = "project"
	FieldTxnIndex   = "txn_index"
	FieldTxnTitle   = "txn_title"
	FieldAmount     = "amount"
	FieldCategory   = "category"
	FieldRevision   = "revision"
	FieldSheet      = "sheet"
	FieldRowCount   = "row_count"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentLedger   = "ledger"
	ComponentImporter = "importer"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentSheets   = "sheets"
	ComponentCache    = "cache"
)

// Operations defines standard operation names
const (
	OpImport    = "import"
	OpNormalize = "normalize"
	OpFilter    = "filter"
	OpAggregate = "aggregate"
	OpCompare   = "compare"
	OpLoad      = "load"
	OpSave      = "save"
	OpAppend    = "append"
	OpDelete    = "delete"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
