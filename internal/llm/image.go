package llm

import "context"

// ImageProvider generates a single illustration from a text prompt.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)

	// ModelID returns the image model identifier.
	ModelID() string
}

// ImageRequest describes an illustration to generate.
type ImageRequest struct {
	Prompt string

	// AspectRatio such as "1:1". Providers map it to their nearest size.
	AspectRatio string
}

// ImageResponse holds the encoded image bytes.
type ImageResponse struct {
	Data     []byte
	MIMEType string
	Model    string
}
