package hooks

import (
	"path/filepath"
	"testing"

	"github.com/dashbridge/dashbridge/filesystem"
	"github.com/dashbridge/dashbridge/host"
	"github.com/dashbridge/dashbridge/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Registry", t, func() {
		r := New()

		Convey("Hooks run in registration order and fold the value", func() {
			r.Register(UpdateSource, func(v interface{}) interface{} {
				return v.(string) + "-first"
			})
			r.Register(UpdateSource, func(v interface{}) interface{} {
				return v.(string) + "-second"
			})

			So(r.Run(UpdateSource, "value"), ShouldEqual, "value-first-second")
		})

		Convey("Extension points are independent", func() {
			r.Register(UpdateSource, func(v interface{}) interface{} {
				return "rewritten"
			})

			So(r.Len(UpdateSource), ShouldEqual, 1)
			So(r.Len(BeforeInitialize), ShouldEqual, 0)
			So(r.Run(BeforeInitialize, "value"), ShouldEqual, "value")
		})

		Convey("Remove detaches by function identity", func() {
			stamp := func(v interface{}) interface{} {
				return v.(string) + "!"
			}
			other := func(v interface{}) interface{} {
				return v.(string) + "?"
			}

			r.Register(UpdateSource, stamp)
			r.Register(UpdateSource, other)
			r.Remove(UpdateSource, stamp)

			So(r.Len(UpdateSource), ShouldEqual, 1)
			So(r.Run(UpdateSource, "v"), ShouldEqual, "v?")

			Convey("and removing an unknown function is harmless", func() {
				r.Remove(UpdateSource, stamp)
				So(r.Len(UpdateSource), ShouldEqual, 1)
			})
		})

		Convey("A nil registry passes values through", func() {
			var nilRegistry *Registry
			So(nilRegistry.Run(UpdateSource, 42), ShouldEqual, 42)
		})
	})
}

func TestLoadScripts(t *testing.T) {
	Convey("LoadScripts", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, filepath.Join(t.TempDir(), "dashbridge"))

		write := func(name, contents string) {
			path := filepath.Join(where.Hooks(), name)
			So(filesystem.API().WriteFile(path, []byte(contents), 0o644), ShouldBeNil)
		}

		Convey("A valid script becomes an updatesource hook", func() {
			write("proxy.lua", `
function updatesource(url, mime)
	return "https://proxy.example/" .. url, mime
end
`)

			r := New()
			So(LoadScripts(r), ShouldBeNil)
			So(r.Len(UpdateSource), ShouldEqual, 1)

			out := r.Run(UpdateSource, host.Source{URL: "movie.mpd", MimeType: "application/dash+xml"})
			src := out.(host.Source)
			So(src.URL, ShouldEqual, "https://proxy.example/movie.mpd")
			So(src.MimeType, ShouldEqual, "application/dash+xml")
		})

		Convey("A script missing the updatesource function is skipped", func() {
			write("broken.lua", `local nothing = true`)

			r := New()
			So(LoadScripts(r), ShouldBeNil)
			So(r.Len(UpdateSource), ShouldEqual, 0)
		})

		Convey("Non-lua files are ignored", func() {
			write("notes.txt", `not a script`)

			r := New()
			So(LoadScripts(r), ShouldBeNil)
			So(r.Len(UpdateSource), ShouldEqual, 0)
		})

		Convey("A failing script passes the source through unchanged", func() {
			write("explode.lua", `
function updatesource(url, mime)
	error("boom")
end
`)

			r := New()
			So(LoadScripts(r), ShouldBeNil)
			So(r.Len(UpdateSource), ShouldEqual, 1)

			out := r.Run(UpdateSource, host.Source{URL: "movie.mpd"})
			So(out.(host.Source).URL, ShouldEqual, "movie.mpd")
		})
	})
}
