package fatigue_test

import (
	"testing"

	"github.com/crewsync/backend/internal/domain/fatigue"
	"github.com/crewsync/backend/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFatigueHeap(t *testing.T) {
	Convey("Given a heap with several crew members", t, func() {
		h := fatigue.NewHeap()
		h.Insert(&model.CrewMember{EmpID: "C1"}, 42)
		h.Insert(&model.CrewMember{EmpID: "C2"}, 15)
		h.Insert(&model.CrewMember{EmpID: "C3"}, 73)
		h.Insert(&model.CrewMember{EmpID: "C4"}, 8)

		Convey("Then extraction pops members in ascending fatigue order", func() {
			first, ok := h.ExtractLeastFatigued()
			So(ok, ShouldBeTrue)
			So(first.EmpID, ShouldEqual, "C4")

			second, ok := h.ExtractLeastFatigued()
			So(ok, ShouldBeTrue)
			So(second.EmpID, ShouldEqual, "C2")

			So(h.Len(), ShouldEqual, 2)
		})

		Convey("And LeastFatigued reads without draining", func() {
			least := h.LeastFatigued(3)
			So(len(least), ShouldEqual, 3)
			So(least[0].EmpID, ShouldEqual, "C4")
			So(least[1].EmpID, ShouldEqual, "C2")
			So(least[2].EmpID, ShouldEqual, "C1")
			So(h.Len(), ShouldEqual, 4)
		})

		Convey("And asking for more than the heap holds returns what exists", func() {
			So(len(h.LeastFatigued(10)), ShouldEqual, 4)
		})
	})

	Convey("Given an empty heap", t, func() {
		h := fatigue.NewHeap()

		Convey("Then extraction reports empty", func() {
			m, ok := h.ExtractLeastFatigued()
			So(ok, ShouldBeFalse)
			So(m, ShouldBeNil)
			So(h.Len(), ShouldEqual, 0)
		})
	})
}
