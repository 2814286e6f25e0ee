package confirm

// Severity drives the default icon and confirm button emphasis of a
// request.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Emphasis is how strongly the confirm button is drawn.
type Emphasis string

const (
	EmphasisPrimary Emphasis = "primary"
	EmphasisWarn    Emphasis = "warn"
)

const (
	defaultConfirmText = "Confirm"
	defaultCancelText  = "Cancel"
)

// Request describes one confirmation. Message may contain Markdown.
type Request struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Severity    Severity
	// Icon overrides the severity icon, e.g. "delete".
	Icon string
	// Emphasis overrides the severity emphasis.
	Emphasis Emphasis
}

type severityStyle struct {
	icon     string
	emphasis Emphasis
}

// Unset and unknown severities fall back to the info row.
var severityStyles = map[Severity]severityStyle{
	SeverityInfo:    {icon: "help", emphasis: EmphasisPrimary},
	SeverityWarning: {icon: "warning", emphasis: EmphasisWarn},
	SeverityDanger:  {icon: "error", emphasis: EmphasisWarn},
}

func styleFor(s Severity) severityStyle {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return severityStyles[SeverityInfo]
}

// Resolved returns a copy with every optional field filled in: labels,
// icon and emphasis. Explicit values are kept.
func (r Request) Resolved() Request {
	style := styleFor(r.Severity)
	if r.Icon == "" {
		r.Icon = style.icon
	}
	if r.Emphasis == "" {
		r.Emphasis = style.emphasis
	}
	if r.ConfirmText == "" {
		r.ConfirmText = defaultConfirmText
	}
	if r.CancelText == "" {
		r.CancelText = defaultCancelText
	}
	return r
}
