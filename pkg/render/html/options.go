package html

// Options configures HTML output.
type Options struct {
	// SoftBreak is written for soft line breaks.
	SoftBreak string
	// Unsafe keeps raw HTML and script-capable URLs. When false, raw HTML is
	// replaced by a comment and such URLs are dropped.
	Unsafe bool
	// XHTML self-closes void elements (<br />, <hr />, <img ... />).
	XHTML bool
	// DetectLanguage adds a language class to fenced code without an info
	// string when the language can be guessed from the code.
	DetectLanguage bool
}

// DefaultOptions returns options producing CommonMark reference output.
func DefaultOptions() Options {
	return Options{
		SoftBreak: "\n",
		Unsafe:    true,
		XHTML:     true,
	}
}

const rawHTMLOmitted = "<!-- raw HTML omitted -->"
