package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"nanosite/internal/infra"
)

// ErrNoImages indicates a well-formed upstream response that contained nothing
// usable, as opposed to an upstream failure.
var ErrNoImages = errors.New("no images returned from the model")

const maxLogPreview = 160

// ImageEditor performs one upstream image-edit call and returns the raw
// response body for scanning.
type ImageEditor interface {
	EditImage(ctx context.Context, prompt, imageDataURL string) ([]byte, error)
}

// Service relays a prompt plus reference image upstream and normalizes the
// response into a list of displayable image references.
type Service struct {
	client   ImageEditor
	resolver *Resolver
	logger   infra.Logger
}

// NewService wires a relay service around an upstream client.
func NewService(client ImageEditor, logger infra.Logger) *Service {
	return &Service{client: client, resolver: NewResolver(logger), logger: logger}
}

// Generate runs the full pipeline: one upstream call, candidate scan, dedup and
// echo filtering, local file materialization. It returns ErrNoImages when the
// pipeline yields an empty set.
func (s *Service) Generate(ctx context.Context, prompt, image string) ([]string, error) {
	s.logger.Debug().
		Str("prompt", preview(prompt)).
		Str("image", preview(image)).
		Msg("relay: sending upstream request")

	body, err := s.client.EditImage(ctx, prompt, image)
	if err != nil {
		return nil, err
	}

	candidates, err := CollectCandidates(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("relay: decode upstream response: %w", err)
	}
	s.logger.Debug().Int("candidates", len(candidates)).Msg("relay: scanned upstream response")

	images := s.resolver.Resolve(ctx, candidates, image)
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

func preview(value string) string {
	if len(value) <= maxLogPreview {
		return value
	}
	return fmt.Sprintf("%s...(%d chars)", value[:maxLogPreview], len(value))
}
