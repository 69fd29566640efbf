package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for Slack replies.
const (
	slackKeyThanks = "slack.thanks"
	slackKeyUsage  = "slack.usage"
)

// slackLanguages lists the languages replies are translated to; the first is
// the fallback.
var slackLanguages = []language.Tag{language.BrazilianPortuguese, language.English}

var slackCatalog = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(slackLanguages[0]))
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(b.SetString(language.BrazilianPortuguese, slackKeyThanks, "obrigado por usar o gchan (⌐■_■)"))
	must(b.SetString(language.BrazilianPortuguese, slackKeyUsage,
		"(⌐■_■) utilize no formato /gchan minha mensagem ; https://wwww.urldaminhaimagem.com/ou_gif/ou_video"))
	must(b.SetString(language.English, slackKeyThanks, "thanks for using gchan (⌐■_■)"))
	must(b.SetString(language.English, slackKeyUsage,
		"(⌐■_■) use the format /gchan my message ; https://www.myimageurl.com/or_gif/or_video"))
	return b
}()

var slackMatcher = language.NewMatcher(slackLanguages)

// SlackLanguage resolves a BCP 47 tag (e.g. "pt-BR", "en-US") to the closest
// supported reply language. Unknown or malformed tags fall back to pt-BR.
func SlackLanguage(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return slackLanguages[0]
	}
	_, idx, conf := slackMatcher.Match(t)
	if conf == language.No {
		return slackLanguages[0]
	}
	return slackLanguages[idx]
}

// SlackReply is the body returned to Slack for a slash command.
type SlackReply struct {
	Text         string `json:"text" example:"obrigado por usar o gchan (⌐■_■)"`
	URL          string `json:"url" example:"https://gchan.com.br/g"`
	ResponseType string `json:"response_type" example:"ephemeral"`

	// MessageID is the stored post, 0 when the command only produced a hint.
	MessageID int64 `json:"-"`
}

func slackText(lang language.Tag, key string) string {
	return message.NewPrinter(lang, message.Catalog(slackCatalog)).Sprintf(key)
}
