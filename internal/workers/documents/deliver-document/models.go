// internal/workers/documents/deliver-document/models.go
package deliverdocument

import "time"

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type Input struct {
	DocumentID string   `json:"documentId"`
	Channel    string   `json:"channel"`
	Recipient  string   `json:"recipient"`
	Name       string   `json:"name,omitempty"`
	Title      string   `json:"title,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Language   string   `json:"language,omitempty"`
}

type Output struct {
	DocumentID  string    `json:"documentId"`
	Channel     string    `json:"channel"`
	Recipient   string    `json:"recipient"`
	MessageID   string    `json:"messageId"`
	Delivered   bool      `json:"delivered"`
	Attachments []string  `json:"attachments,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

func GetInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"documentId", "channel", "recipient"},
		"properties": map[string]interface{}{
			"documentId": map[string]interface{}{"type": "string", "minLength": 1},
			"channel": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{ChannelEmail, ChannelSMS},
			},
			"recipient": map[string]interface{}{"type": "string", "minLength": 1},
		},
	}
}
