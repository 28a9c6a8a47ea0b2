package schema

// ImageAttachment is a base64-encoded image stored with a run so workers
// can feed it to vision-capable tools.
type ImageAttachment struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}
