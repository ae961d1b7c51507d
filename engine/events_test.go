package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBus(t *testing.T) {
	Convey("Bus", t, func() {
		bus := NewBus()

		Convey("Listeners run in registration order", func() {
			var order []int
			bus.On("tick", func(interface{}) { order = append(order, 1) })
			bus.On("tick", func(interface{}) { order = append(order, 2) })
			bus.On("tick", func(interface{}) { order = append(order, 3) })

			bus.Emit("tick", nil)
			So(order, ShouldResemble, []int{1, 2, 3})
		})

		Convey("Payloads reach every listener", func() {
			var got []interface{}
			bus.On("tick", func(p interface{}) { got = append(got, p) })
			bus.On("tick", func(p interface{}) { got = append(got, p) })

			bus.Emit("tick", 42)
			So(got, ShouldResemble, []interface{}{42, 42})
		})

		Convey("Off detaches exactly the handled listener", func() {
			var first, second int
			h := bus.On("tick", func(interface{}) { first++ })
			bus.On("tick", func(interface{}) { second++ })

			bus.Off(h)
			bus.Emit("tick", nil)

			So(first, ShouldEqual, 0)
			So(second, ShouldEqual, 1)

			Convey("and detaching twice is harmless", func() {
				bus.Off(h)
				bus.Emit("tick", nil)
				So(second, ShouldEqual, 2)
			})
		})

		Convey("A zero handle detaches nothing", func() {
			var calls int
			bus.On("tick", func(interface{}) { calls++ })

			So(Handle{}.Zero(), ShouldBeTrue)
			bus.Off(Handle{})
			bus.Emit("tick", nil)
			So(calls, ShouldEqual, 1)
		})

		Convey("Listeners detached during dispatch still run for that emission", func() {
			var handles []Handle
			var calls int

			handles = append(handles, bus.On("tick", func(interface{}) {
				for _, h := range handles {
					bus.Off(h)
				}
			}))
			handles = append(handles, bus.On("tick", func(interface{}) { calls++ }))

			bus.Emit("tick", nil)
			So(calls, ShouldEqual, 1)

			bus.Emit("tick", nil)
			So(calls, ShouldEqual, 1)
		})

		Convey("ListenerCount spans all events", func() {
			bus.On("tick", func(interface{}) {})
			bus.On("tock", func(interface{}) {})

			So(bus.ListenerCount(), ShouldEqual, 2)
		})
	})
}

func TestBusDefer(t *testing.T) {
	Convey("Bus.Defer", t, func() {
		bus := NewBus()

		Convey("Outside of a dispatch the task runs immediately", func() {
			var ran bool
			bus.Defer(func() { ran = true })
			So(ran, ShouldBeTrue)
		})

		Convey("During a dispatch the task runs after the emission returns", func() {
			var trace []string
			bus.On("tick", func(interface{}) {
				bus.Defer(func() { trace = append(trace, "deferred") })
				trace = append(trace, "listener")
			})
			bus.On("tick", func(interface{}) {
				trace = append(trace, "second listener")
			})

			bus.Emit("tick", nil)
			So(trace, ShouldResemble, []string{"listener", "second listener", "deferred"})
		})

		Convey("Deferred tasks run in FIFO order", func() {
			var trace []int
			bus.On("tick", func(interface{}) {
				bus.Defer(func() { trace = append(trace, 1) })
				bus.Defer(func() { trace = append(trace, 2) })
			})

			bus.Emit("tick", nil)
			So(trace, ShouldResemble, []int{1, 2})
		})

		Convey("Tasks deferred while draining run within the same drain", func() {
			var trace []string
			bus.On("tick", func(interface{}) {
				bus.Defer(func() {
					trace = append(trace, "outer")
					bus.Defer(func() { trace = append(trace, "inner") })
				})
			})

			bus.Emit("tick", nil)
			So(trace, ShouldResemble, []string{"outer", "inner"})
		})

		Convey("Nested emissions drain only once the outermost returns", func() {
			var trace []string
			bus.On("outer", func(interface{}) {
				bus.Defer(func() { trace = append(trace, "deferred") })
				bus.Emit("inner", nil)
				trace = append(trace, "after inner")
			})
			bus.On("inner", func(interface{}) {
				trace = append(trace, "inner listener")
			})

			bus.Emit("outer", nil)
			So(trace, ShouldResemble, []string{"inner listener", "after inner", "deferred"})
		})
	})
}
