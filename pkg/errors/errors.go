package errors

// Diagnostic messages reported against import lines
const (
	MsgMultipleStatements = "multiple import statements on one line. Put each import on its own line."
	MsgMultipleMembers    = "multiple names imported on one line. Please import each name on its own line."
	MsgContinuation       = "continuation character found. Please import each name on a single line."
	MsgParenthesis        = "parenthesis character found. Please import each name on a single line."
	MsgMixedForms         = "Warning: mixing of 'import ...' and 'from ... import ...' statements in the same group"
	MsgBadOrder           = "Bad order for this import"
	MsgCompareFailed      = "unable to compare this import with the previous one"
)

// Error message constants for the py-imports-check application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToRenderDiff = "failed to render diff"
	ErrMsgInvalidImports     = "invalid imports"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindFiles    = "failed to find Python files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToReadConfig   = "failed to read config file"
	ErrMsgFailedToDecodeConfig = "failed to decode config"
	ErrMsgFailedToBindFlags    = "failed to bind flags"

	// Info/warning messages
	InfoMsgNoFilesFound    = "No Python files found in directory: %s"
	InfoMsgFoundFiles      = "Found %d Python files in directory: %s"
	InfoMsgReordered       = "import successfully reordered for file: %s"
	InfoMsgUnchanged       = "imports already sorted: %s"
	InfoMsgInvalid         = "imports cannot be fixed automatically: %s"
	InfoMsgErrorProcessing = "Error processing %s: %v"
	InfoMsgProcessedCount  = "Processed %d files successfully"
	InfoMsgErrorCount      = "%d files had errors"
	InfoMsgUsingConfig     = "Using config file: %s"
)
