package constant

// WelcomeMessageTemplate seeds the first assistant message of every new
// notebook. The placeholder takes the notebook title.
const WelcomeMessageTemplate = `Welcome to your new notebook "%s". I'm ready to help you analyze your sources.`

// DefaultNotebookTitle is used when a notebook is created without a title.
const DefaultNotebookTitle = "Untitled notebook"

// DefaultNotebookIcon decorates freshly created notebooks. Presentational
// only.
const (
	DefaultNotebookIcon    = "📓"
	DefaultNotebookBgColor = "bg-slate-50"
)
