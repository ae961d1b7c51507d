// Package prefs persists the user's track-selection preferences across source loads.
package prefs

import (
	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/filesystem"
	"github.com/dashbridge/dashbridge/key"
	"github.com/dashbridge/dashbridge/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// cacher provides an abstracted, disk-backed registry for selection preference records.
var cacher = gache.New[map[string]string](
	&gache.Options{
		Path:       where.Prefs(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// get returns the stored media-type to language mapping, or an empty one.
func get() (map[string]string, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]string), nil
	}
	return cached, nil
}

// PreferredLanguage resolves the preferred language tag for a media type.
// An explicit configuration override wins over the remembered selection.
func PreferredLanguage(t engine.MediaType) mo.Option[string] {
	var override string
	switch t {
	case engine.Audio:
		override = viper.GetString(key.PrefsAudioLanguage)
	case engine.Text:
		override = viper.GetString(key.PrefsTextLanguage)
	}
	if override != "" {
		return mo.Some(override)
	}

	stored, err := get()
	if err != nil {
		return mo.None[string]()
	}
	if lang, ok := stored[string(t)]; ok && lang != "" {
		return mo.Some(lang)
	}
	return mo.None[string]()
}

// Remember records the language of a user-selected track for the media type.
// Disabled unless prefs.remember_language is set; video selections are never
// language driven and are not recorded.
func Remember(t engine.MediaType, language string) error {
	if !viper.GetBool(key.PrefsRememberLanguage) {
		return nil
	}
	if t == engine.Video || language == "" {
		return nil
	}

	stored, err := get()
	if err != nil {
		return err
	}

	stored[string(t)] = language
	return cacher.Set(stored)
}

// Forget removes every stored selection preference.
func Forget() error {
	return cacher.Set(make(map[string]string))
}
