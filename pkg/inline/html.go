package inline

import "regexp"

const (
	tagName       = `[A-Za-z][A-Za-z0-9-]*`
	attributeName = `[a-zA-Z_:][a-zA-Z0-9_.:-]*`
	attrValue     = `(?:[^"'=<>` + "`" + `\x00-\x20]+|'[^']*'|"[^"]*")`
	attribute     = `(?:\s+` + attributeName + `(?:\s*=\s*` + attrValue + `)?)`
	openTag       = `<` + tagName + attribute + `*\s*/?>`
	closeTag      = `</` + tagName + `\s*>`
	comment       = `<!-->|<!--->|<!--[\s\S]*?-->`
	procInst      = `<\?[\s\S]*?\?>`
	declaration   = `<![A-Za-z][^>]*>`
	cdata         = `<!\[CDATA\[[\s\S]*?\]\]>`
)

var (
	autolinkURI   = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9.+-]{1,31}:[^<>\x00-\x20]*>`)
	autolinkEmail = regexp.MustCompile(`^<[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*>`)
	inlineHTML = regexp.MustCompile(`^(?:` + openTag + `|` + closeTag + `|` + comment + `|` +
		procInst + `|` + declaration + `|` + cdata + `)`)
)
