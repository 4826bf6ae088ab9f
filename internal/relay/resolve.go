package relay

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"nanosite/internal/infra"
)

var extensionMIME = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// Resolver turns scanned candidates into displayable image references.
type Resolver struct {
	logger infra.Logger
}

// NewResolver constructs a resolver that logs dropped candidates.
func NewResolver(logger infra.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve deduplicates the scanned candidates (first occurrence wins), drops
// the one matching the uploaded image (models frequently echo the input back),
// materializes local-path candidates by reading the files concurrently, and
// merges everything into one ordered set. Unreadable files reduce the set
// instead of failing the whole request: delivering some images beats failing
// outright.
func (r *Resolver) Resolve(ctx context.Context, candidates []Candidate, uploadedImage string) []string {
	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0:0]
	for _, c := range candidates {
		if _, ok := seen[c.Value]; ok {
			continue
		}
		seen[c.Value] = struct{}{}
		unique = append(unique, c)
	}

	echo := NormalizeCandidate(uploadedImage)
	if echo == "" {
		echo = uploadedImage
	}

	var local, remote []Candidate
	for _, c := range unique {
		if c.Value == echo {
			continue
		}
		if strings.HasPrefix(c.Value, "/") {
			local = append(local, c)
		} else {
			remote = append(remote, c)
		}
	}

	// Launch all file reads at once and wait for every one to settle. Each
	// read fails independently; a bad path never cancels its siblings.
	resolved := make([]string, len(local))
	g, _ := errgroup.WithContext(ctx)
	for i, c := range local {
		i, c := i, c
		g.Go(func() error {
			dataURL, err := readFileAsDataURL(c.Value)
			if err != nil {
				r.logger.Warn().Err(err).Str("path", c.Path).Msg("unable to read generated image file")
				return nil
			}
			resolved[i] = dataURL
			return nil
		})
	}
	_ = g.Wait()

	final := make(map[string]struct{}, len(remote)+len(resolved))
	merged := make([]string, 0, len(remote)+len(resolved))
	appendUnique := func(value string) {
		if value == "" {
			return
		}
		if _, ok := final[value]; ok {
			return
		}
		final[value] = struct{}{}
		merged = append(merged, value)
	}
	for _, c := range remote {
		appendUnique(c.Value)
	}
	for _, dataURL := range resolved {
		appendUnique(dataURL)
	}
	return merged
}

func readFileAsDataURL(path string) (string, error) {
	resolvedPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		return "", err
	}
	mimeType, ok := extensionMIME[strings.ToLower(filepath.Ext(resolvedPath))]
	if !ok {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
