package prefs

import (
	"testing"

	"github.com/dashbridge/dashbridge/engine"
	"github.com/dashbridge/dashbridge/filesystem"
	"github.com/dashbridge/dashbridge/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPrefs(t *testing.T) {
	Convey("Given an empty preference store", t, func() {
		viper.Reset()
		So(Forget(), ShouldBeNil)

		Convey("Nothing is remembered while the gate is off", func() {
			So(Remember(engine.Audio, "fr"), ShouldBeNil)
			So(PreferredLanguage(engine.Audio).IsAbsent(), ShouldBeTrue)
		})

		Convey("When remembering is enabled", func() {
			viper.Set(key.PrefsRememberLanguage, true)

			Convey("An audio selection is recorded and resolved", func() {
				So(Remember(engine.Audio, "fr"), ShouldBeNil)

				lang, ok := PreferredLanguage(engine.Audio).Get()
				So(ok, ShouldBeTrue)
				So(lang, ShouldEqual, "fr")

				Convey("And other media types stay unset", func() {
					So(PreferredLanguage(engine.Text).IsAbsent(), ShouldBeTrue)
				})

				Convey("And Forget clears it", func() {
					So(Forget(), ShouldBeNil)
					So(PreferredLanguage(engine.Audio).IsAbsent(), ShouldBeTrue)
				})
			})

			Convey("Video selections are never recorded", func() {
				So(Remember(engine.Video, "de"), ShouldBeNil)
				So(PreferredLanguage(engine.Video).IsAbsent(), ShouldBeTrue)
			})

			Convey("Empty languages are never recorded", func() {
				So(Remember(engine.Text, ""), ShouldBeNil)
				So(PreferredLanguage(engine.Text).IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("A configuration override wins over the remembered selection", func() {
			viper.Set(key.PrefsRememberLanguage, true)
			So(Remember(engine.Text, "es"), ShouldBeNil)

			viper.Set(key.PrefsTextLanguage, "ja")

			lang, ok := PreferredLanguage(engine.Text).Get()
			So(ok, ShouldBeTrue)
			So(lang, ShouldEqual, "ja")
		})
	})
}
