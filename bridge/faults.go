// Package bridge implements the track reconciliation and event-translation layer
// between the playback engine and the host media-player framework.
package bridge

import (
	"strings"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/host"
)

// Fixed host-facing messages for categories whose engine detail is not human readable.
const (
	msgFeatureUnsupported    = "feature not supported"
	msgEncryptionUnsupported = "encryption not supported"
	msgDownloadFailure       = "too many consecutive download errors"
)

// fatalManifestKinds enumerates the manifest sub-kinds that terminate playback.
var fatalManifestKinds = map[string]struct{}{
	engine.ManifestParserMissing:     {},
	engine.ManifestCodecUnsupported:  {},
	engine.ManifestNoStreams:         {},
	engine.ManifestCompositionFailed: {},
	engine.ManifestParseSyntaxError:  {},
	engine.ManifestMultiplexed:       {},
}

// mediaMarkers maps media-element failure text markers to host codes, in match
// priority order. The markers are mutually exclusive in practice; unmatched text
// falls back to src-not-supported.
var mediaMarkers = []struct {
	marker string
	code   int
}{
	{"aborted", host.ErrAborted},
	{"network", host.ErrNetwork},
	{"decode", host.ErrDecode},
	{"src not supported", host.ErrSrcNotSupported},
	{"encrypted", host.ErrEncrypted},
}

// mediaElementCode matches the failure text of a media-source error against the
// marker table.
func mediaElementCode(detail string) int {
	normalized := strings.ToLower(detail)
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)

	for _, m := range mediaMarkers {
		if strings.Contains(normalized, m.marker) {
			return m.code
		}
	}
	return host.ErrSrcNotSupported
}

// classify translates one engine error signal into the host's standardized
// vocabulary. fatal is false for categories defined as non-fatal, which are
// discarded without any host-visible effect.
func classify(ev engine.ErrorEvent) (herr host.Error, fatal bool) {
	switch ev.Category {
	case engine.CategoryCapability:
		switch feature := ev.Detail.(type) {
		case string:
			if feature == engine.FeatureMediaSource {
				return host.Error{Code: host.ErrSrcNotSupported, Message: msgFeatureUnsupported}, true
			}
			if feature == engine.FeatureEncryptedMedia {
				return host.Error{Code: host.ErrEncrypted, Message: msgEncryptionUnsupported}, true
			}
		}
		return host.Error{}, false

	case engine.CategoryManifest:
		if _, ok := fatalManifestKinds[ev.DetailID()]; ok {
			return host.Error{Code: host.ErrSrcNotSupported, Message: ev.Message()}, true
		}
		return host.Error{}, false

	case engine.CategoryMediaSource:
		return host.Error{Code: mediaElementCode(ev.Message()), Message: ev.Message()}, true

	case engine.CategoryKeySession:
		return host.Error{Code: host.ErrEncrypted, Message: ev.Message()}, true

	case engine.CategoryDownload:
		return host.Error{Code: host.ErrNetwork, Message: msgDownloadFailure}, true

	default:
		// Unmapped categories (text tracks, key messages, ...) are dropped,
		// not defaulted to a generic code.
		return host.Error{}, false
	}
}
