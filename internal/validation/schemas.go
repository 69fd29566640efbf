package validation

// PublicPost is a message submitted through the public board form.
type PublicPost struct {
	Username  string  `json:"username"   form:"username"   validate:"required,alphanum"`
	Subject   string  `json:"subject"    form:"subject"    validate:"required"`
	Message   string  `json:"message"    form:"message"    validate:"required,max=250"`
	ImageURL  string  `json:"imageURL"   form:"imageURL"   validate:"httpuri"`
	GiphyURL  *string `json:"giphyURL"   form:"giphyURL"`
	Options   *string `json:"options"    form:"options"`
	UserID    *int64  `json:"user_id"    form:"user_id"`
	GifOrigin *string `json:"gif_origin" form:"gif_origin"`
}

// SlackCommand is the form body Slack sends for a slash command.
type SlackCommand struct {
	Token               string `json:"token"                 form:"token"                 validate:"required,alphanum"`
	TeamID              string `json:"team_id"               form:"team_id"               validate:"required,alphanum"`
	TeamDomain          string `json:"team_domain"           form:"team_domain"           validate:"required,alphanum"`
	ChannelID           string `json:"channel_id"            form:"channel_id"            validate:"required,alphanum"`
	ChannelName         string `json:"channel_name"          form:"channel_name"          validate:"required,alphanum"`
	UserID              string `json:"user_id"               form:"user_id"               validate:"required,alphanum"`
	UserName            string `json:"user_name"             form:"user_name"             validate:"required"`
	Command             string `json:"command"               form:"command"               validate:"required"`
	Text                string `json:"text"                  form:"text"                  validate:"required"`
	APIAppID            string `json:"api_app_id"            form:"api_app_id"            validate:"required,alphanum"`
	IsEnterpriseInstall string `json:"is_enterprise_install" form:"is_enterprise_install" validate:"max=5"`
	ResponseURL         string `json:"response_url"          form:"response_url"          validate:"omitempty,httpsuri"`
	TriggerID           string `json:"trigger_id"            form:"trigger_id"            validate:"required"`
}

// Reply is an answer submitted under an existing message.
type Reply struct {
	MessageID int64   `json:"message_id" form:"message_id" validate:"required,gt=0"`
	Username  string  `json:"username"   form:"username"   validate:"required,alphanum"`
	Reply     string  `json:"reply"      form:"reply"      validate:"required,max=250"`
	ImageURL  string  `json:"imageURL"   form:"imageURL"   validate:"httpuri"`
	GiphyURL  *string `json:"giphyURL"   form:"giphyURL"`
	UserID    *int64  `json:"user_id"    form:"user_id"`
	GifOrigin *string `json:"gif_origin" form:"gif_origin"`
}

// Marquee is a scrolling announcement.
type Marquee struct {
	Content string `json:"content" form:"content" validate:"required,max=100"`
	Href    string `json:"href"    form:"href"    validate:"httpuri"`
}

// Placeholder is a hint for the empty post form.
type Placeholder struct {
	Placeholder string `json:"placeholder" form:"placeholder" validate:"required,max=250"`
}
