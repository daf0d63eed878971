package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ChannelLookup is the slice of the video platform API the resolver needs.
type ChannelLookup interface {
	// SearchChannels returns channel IDs for a free-text query, best match first.
	SearchChannels(ctx context.Context, query string) ([]string, error)
	// GetVideoOwner returns the channel that owns the given video.
	GetVideoOwner(ctx context.Context, videoID string) (string, error)
	// GetChannelByHandle resolves an @handle via exact-match lookup.
	GetChannelByHandle(ctx context.Context, handle string) (string, error)
}

// ErrNoDefault is returned when the reference is empty and no default
// channel is configured.
var ErrNoDefault = errors.New("no channel reference given and no default channel configured")

// ResolutionError means the reference could not be mapped to any channel.
// Surfaced to users as "channel not found"; transport failures are not
// wrapped in it and propagate as-is.
type ResolutionError struct {
	Reference string
	Reason    string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve channel reference %q: %s", e.Reference, e.Reason)
}

// statusError is satisfied by the platform client's APIError. A 404 from a
// lookup means "no such channel/video", which is a resolution failure, not
// a transport one.
type statusError interface {
	error
	HTTPStatus() int
}

func isNotFound(err error) bool {
	var se statusError
	return errors.As(err, &se) && se.HTTPStatus() == http.StatusNotFound
}

// Resolver turns a user-supplied channel reference of unknown shape into a
// canonical channel ID. Stateless per call; lookups that hit the network go
// through the injected ChannelLookup.
type Resolver struct {
	lookup    ChannelLookup
	defaultID string
}

func New(lookup ChannelLookup, defaultChannelID string) *Resolver {
	return &Resolver{lookup: lookup, defaultID: defaultChannelID}
}

// Resolve applies a prioritized strategy chain, first match wins:
//
//  1. empty reference → configured default channel
//  2. canonical ID shape (UC…, len ≥ 20) → returned verbatim, unvalidated
//  3. @handle → exact handle lookup
//  4. http(s) URL → video owner / channel path / handle path, else step 5
//  5. anything else → free-text channel search, top result
//
// Steps 1, 2 and the /channel/<id> URL form never issue a network call.
func (r *Resolver) Resolve(ctx context.Context, reference string) (string, error) {
	ref := strings.TrimSpace(reference)

	if ref == "" {
		if r.defaultID == "" {
			return "", ErrNoDefault
		}
		return r.defaultID, nil
	}

	if isCanonicalID(ref) {
		return ref, nil
	}

	if strings.HasPrefix(ref, "@") {
		return r.byHandle(ctx, ref)
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return r.byURL(ctx, ref)
	}

	return r.bySearch(ctx, ref)
}

// isCanonicalID reports whether ref already looks like a channel ID.
// Existence is discovered lazily on first use upstream.
func isCanonicalID(ref string) bool {
	return strings.HasPrefix(ref, "UC") && len(ref) >= 20
}

func (r *Resolver) byHandle(ctx context.Context, handle string) (string, error) {
	id, err := r.lookup.GetChannelByHandle(ctx, handle)
	if err != nil {
		if isNotFound(err) {
			return "", &ResolutionError{Reference: handle, Reason: "channel not found for handle"}
		}
		return "", err
	}
	return id, nil
}

// byURL dispatches on the parsed URL structure. Trailing slashes, query
// parameters and fragments are handled by the parser; extraction works on
// clean path segments.
func (r *Resolver) byURL(ctx context.Context, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return r.bySearch(ctx, raw)
	}

	if videoID := extractVideoID(u); videoID != "" {
		id, err := r.lookup.GetVideoOwner(ctx, videoID)
		if err != nil {
			if isNotFound(err) {
				return "", &ResolutionError{Reference: raw, Reason: "video not found: " + videoID}
			}
			return "", err
		}
		return id, nil
	}

	segments := pathSegments(u)
	for i, seg := range segments {
		if seg == "channel" && i+1 < len(segments) {
			return segments[i+1], nil
		}
		if strings.HasPrefix(seg, "@") {
			return r.byHandle(ctx, seg)
		}
	}

	// No recognizable pattern in the URL: treat the whole string as a query.
	return r.bySearch(ctx, raw)
}

func (r *Resolver) bySearch(ctx context.Context, query string) (string, error) {
	ids, err := r.lookup.SearchChannels(ctx, query)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", &ResolutionError{Reference: query, Reason: "no channel found for query"}
	}
	return ids[0], nil
}

// extractVideoID pulls a video ID out of short-form (youtu.be/<id>) and
// long-form (watch?v=, /shorts/<id>, /embed/<id>, /live/<id>) video URLs.
// Returns "" when the URL is not a video URL.
func extractVideoID(u *url.URL) string {
	segments := pathSegments(u)

	if strings.EqualFold(u.Hostname(), "youtu.be") {
		if len(segments) > 0 {
			return segments[0]
		}
		return ""
	}

	if len(segments) > 0 && segments[0] == "watch" {
		return u.Query().Get("v")
	}

	for i, seg := range segments {
		switch seg {
		case "shorts", "embed", "live":
			if i+1 < len(segments) {
				return segments[i+1]
			}
		}
	}
	return ""
}

func pathSegments(u *url.URL) []string {
	var segments []string
	for _, seg := range strings.Split(u.Path, "/") {
		// Defensive strip: some callers paste URLs with a bare & instead
		// of a proper query separator.
		if idx := strings.IndexAny(seg, "?&"); idx >= 0 {
			seg = seg[:idx]
		}
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
