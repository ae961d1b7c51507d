// Package bridge implements the track reconciliation and event-translation layer
// between the playback engine and the host media-player framework.
package bridge

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/host"
)

// mimeTypePattern matches the standardized adaptive manifest MIME type.
var mimeTypePattern = regexp.MustCompile(`(?i)^application/dash\+xml$`)

// manifestExtension is the recognized manifest file extension for the
// extension heuristic.
const manifestExtension = ".mpd"

// CanPlayType answers whether a MIME type is playable through this handler.
// Reusable standalone; only an exact standardized MIME match is definite.
func CanPlayType(mimeType string) host.CanPlay {
	if mimeTypePattern.MatchString(mimeType) {
		return host.CanPlayProbably
	}
	return host.CanPlayNo
}

// CanHandleSource answers whether the source descriptor can be handled.
//
// A definite answer requires the standardized MIME type; a recognized manifest
// extension with a non-matching MIME type yields "maybe". When the descriptor
// requests key systems and the runtime lacks encrypted-media support, the answer
// is always negative regardless of MIME or extension.
func CanHandleSource(src host.Source, caps host.Capabilities) host.CanPlay {
	if len(src.KeySystemOptions) > 0 && !caps.EncryptedMedia {
		return host.CanPlayNo
	}

	if CanPlayType(src.MimeType) == host.CanPlayProbably {
		return host.CanPlayProbably
	}

	if hasManifestExtension(src.URL) {
		return host.CanPlayMaybe
	}
	return host.CanPlayNo
}

// hasManifestExtension applies the file-extension heuristic to the source URL.
func hasManifestExtension(raw string) bool {
	target := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		target = u.Path
	}
	return strings.EqualFold(path.Ext(target), manifestExtension)
}

// HandleSource constructs the adapter for a source descriptor and attaches it.
// The returned bridge is already initialized unless the descriptor is empty, in
// which case the bridge stays permanently uninitialized as a no-op load.
func HandleSource(eng engine.Engine, hst host.Host, src host.Source, opts Options) (*Bridge, error) {
	b := New(eng, hst, src, opts)
	if err := b.Initialize(); err != nil {
		return nil, err
	}
	return b, nil
}
