// Package bridge implements the track reconciliation and event-translation layer
// between the playback engine and the host media-player framework.
//
// The bridge mirrors the engine's track set into the host's track lists once per
// load, keeps the two selections consistent, translates engine errors into the
// host's standardized codes and owns the lifecycle of every listener this requires.
package bridge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/host"
)

// trackIDPrefix names the engine in derived host track ids.
const trackIDPrefix = "dash"

// TrackID derives the host track id for an engine track. The mapping is the sole
// mechanism binding a host track back to its engine counterpart, so it must stay
// invertible through ParseTrackID.
func TrackID(t engine.MediaType, index int) string {
	return fmt.Sprintf("%s-%s-%d", trackIDPrefix, t, index)
}

// ParseTrackID inverts TrackID. ok is false for ids this bridge did not derive.
func ParseTrackID(id string) (t engine.MediaType, index int, ok bool) {
	rest, found := strings.CutPrefix(id, trackIDPrefix+"-")
	if !found {
		return "", 0, false
	}

	mediaType, raw, found := strings.Cut(rest, "-")
	if !found {
		return "", 0, false
	}

	switch engine.MediaType(mediaType) {
	case engine.Audio, engine.Video, engine.Text:
	default:
		return "", 0, false
	}

	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return "", 0, false
	}
	return engine.MediaType(mediaType), index, true
}

// Kind derives the host track kind from the engine roles. The result is a pure
// function of the role set, evaluated in fixed priority; no match yields the
// empty string, which the host treats as its default kind.
func Kind(t engine.MediaType, roles []string) string {
	has := func(role string) bool {
		for _, r := range roles {
			if r == role {
				return true
			}
		}
		return false
	}

	if t == engine.Text {
		// Text tracks carry a captions/subtitles specific vocabulary.
		switch {
		case has("caption"):
			return "captions"
		case has("subtitle"):
			return "subtitles"
		default:
			return ""
		}
	}

	switch {
	case t == engine.Video && has("main") && has("caption"):
		return "captions"
	case t == engine.Video && has("main") && has("subtitle"):
		return "subtitle"
	case has("main"):
		return "main"
	case has("commentary"):
		return "commentary"
	case has("alternate"):
		return "alternate"
	case has("sign"):
		return "sign"
	default:
		return ""
	}
}

// Label derives the display string for an engine track.
//
// Priority: a manifest label whose language tag matches the host UI language,
// then a lone manifest label, then the track language annotated with its roles.
func Label(t engine.Track, uiLanguage string) string {
	ui := strings.ToLower(uiLanguage)
	for _, l := range t.Labels {
		if l.Language != "" && strings.Contains(ui, strings.ToLower(l.Language)) {
			return l.Text
		}
	}

	if len(t.Labels) == 1 {
		return t.Labels[0].Text
	}

	label := t.Language
	if len(t.Roles) > 0 {
		label += " (" + strings.Join(t.Roles, ", ") + ")"
	}
	return label
}

// mirror builds the host track list for one media type from the engine's current
// track set, in engine order, marking exactly the engine-active track selected.
//
// For video, a host list already populated by the platform is cleared first so
// the mirror becomes the single source of truth. Mirroring happens at most once
// per load, at metadata-loaded time.
func mirror(eng engine.Engine, mediaType engine.MediaType, list *host.TrackList, uiLanguage string) {
	if mediaType == engine.Video && list.Len() > 0 {
		list.Clear()
	}

	activeIndex := -1
	if active, ok := eng.CurrentTrack(mediaType).Get(); ok {
		activeIndex = active.Index
	}

	for _, t := range eng.TracksFor(mediaType) {
		list.Add(&host.Track{
			ID:       TrackID(mediaType, t.Index),
			Kind:     Kind(mediaType, t.Roles),
			Label:    Label(t, uiLanguage),
			Language: t.Language,
			Selected: t.Index == activeIndex,
		})
	}
}
