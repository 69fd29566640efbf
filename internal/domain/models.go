// Package domain defines the persistence models for the message board:
// messages, replies, marquees, and placeholders. These types are mapped with
// GORM onto the legacy gchan tables and form the core data layer of the
// application.
package domain

import "time"

// DefaultUsername is the author shown for anonymous posts.
const DefaultUsername = "Anonymous"

// Message is a top-level board post.
//
// Column names follow the legacy Postgres table, where unquoted identifiers
// such as imageURL were folded to lower case.
//
// Fields:
//   - ID: generated by the store on insert; unique and immutable.
//   - Username: author handle, "Anonymous" when absent.
//   - Subject: thread subject ("slackin" for Slack posts).
//   - Message: body text, at most 250 characters.
//   - ImageURL: optional http(s) link to an image, gif, or video ("" when absent).
//   - GiphyURL / Options / GifOrigin: optional free-form strings (NULL when absent).
//   - UserID: optional numeric author id, 0 for Slack posts.
//   - Created: stamped server-side on insert and never updated.
type Message struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username"   gorm:"type:text;not null"`
	Subject   string    `json:"subject"    gorm:"type:text;not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	ImageURL  string    `json:"imageurl"   gorm:"column:imageurl;type:text"`
	GiphyURL  *string   `json:"giphyurl"   gorm:"column:giphyurl;type:text"`
	Options   *string   `json:"options"    gorm:"type:text"`
	Created   time.Time `json:"created"    gorm:"not null"`
	UserID    *int64    `json:"user_id"    gorm:"column:user_id"`
	GifOrigin *string   `json:"gif_origin" gorm:"column:gif_origin;type:text"`

	// SlackID is the Slack user that issued a slash command. It is kept for
	// logging only and has no column.
	SlackID string `json:"-" gorm:"-"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Reply is an answer posted under a Message.
type Reply struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	MessageID int64     `json:"message_id" gorm:"column:message_id;not null;index:idx_replies_message"`
	Username  string    `json:"username"   gorm:"type:text;not null"`
	Reply     string    `json:"reply"      gorm:"type:text;not null"`
	ImageURL  string    `json:"imageurl"   gorm:"column:imageurl;type:text"`
	GiphyURL  *string   `json:"giphyurl"   gorm:"column:giphyurl;type:text"`
	GifOrigin *string   `json:"gif_origin" gorm:"column:gif_origin;type:text"`
	UserID    *int64    `json:"user_id"    gorm:"column:user_id"`
	Created   time.Time `json:"created"    gorm:"not null"`
}

// TableName returns the database table name for Reply.
func (Reply) TableName() string { return "replies" }

// Marquee is a short scrolling announcement shown above the board.
type Marquee struct {
	ID      int64     `json:"id"      gorm:"primaryKey;autoIncrement"`
	Content string    `json:"content" gorm:"type:text;not null"`
	Href    string    `json:"href"    gorm:"type:text"`
	Created time.Time `json:"created" gorm:"not null"`
}

// TableName returns the database table name for Marquee.
func (Marquee) TableName() string { return "marquees" }

// Placeholder is a canned hint shown in the empty post form.
type Placeholder struct {
	ID          int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	Placeholder string    `json:"placeholder" gorm:"type:text;not null"`
	Created     time.Time `json:"created"     gorm:"not null"`
}

// TableName returns the database table name for Placeholder.
func (Placeholder) TableName() string { return "placeholders" }
