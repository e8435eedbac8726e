package engine_test

import (
	"context"
	"math"
	"testing"

	"github.com/crewsync/backend/internal/domain/engine"
	"github.com/crewsync/backend/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// zeroRand pins the scoring jitter to 0 so ordering is exact.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

// uniformAttrs returns attributes with every score set to v.
func uniformAttrs(v float64) model.Attributes {
	return model.Attributes{
		Fatigue:             v,
		RestPeriod:          v,
		ConsecutiveDuty:     v,
		MedicalStatus:       v,
		Performance:         v,
		OnTimeRecord:        v,
		SkillProficiency:    v,
		Reliability:         v,
		BackoutHistory:      v,
		Seniority:           v,
		FlightHours:         v,
		Location:            v,
		Availability:        v,
		DutyCompliance:      v,
		CertificationValid:  v,
		LanguageProficiency: v,
		RouteFamiliarity:    v,
	}
}

func member(id, base string, avail model.Availability, quals []string, score float64) *model.CrewMember {
	return &model.CrewMember{
		EmpID:          id,
		Name:           "Crew " + id,
		Designation:    "Captain",
		BaseLocation:   base,
		Availability:   avail,
		Qualifications: quals,
		Attributes:     uniformAttrs(score),
	}
}

func newEngine(crew []*model.CrewMember) *engine.Engine {
	eng, err := engine.New(crew, engine.WithRand(zeroRand{}))
	So(err, ShouldBeNil)
	return eng
}

func flightDELBOM() *model.Flight {
	return &model.Flight{
		FlightNumber: "AI-302",
		Aircraft:     "A320",
		Origin:       "DEL",
		Destination:  "BOM",
		Route:        "Delhi - Mumbai",
		CrewRequired: 6,
		CrewAssigned: 4,
	}
}

func TestEngineWeightTable(t *testing.T) {
	Convey("Given the attribute weight table", t, func() {
		table := engine.WeightTable()

		Convey("Then it has one weight per attribute", func() {
			So(len(table), ShouldEqual, len(model.AttributeNames))
		})

		Convey("And the weights sum to 1.0", func() {
			var sum float64
			for _, w := range table {
				sum += w
			}
			So(math.Abs(sum-1.0), ShouldBeLessThan, 1e-9)
		})
	})
}

func TestEngineRecommend(t *testing.T) {
	Convey("Given a roster with one at-origin and one at-destination candidate", t, func() {
		p1 := member("P1", "DEL", model.Available, []string{"A320"}, 80)
		p2 := member("P2", "BOM", model.Available, []string{"A320"}, 80)
		eng := newEngine([]*model.CrewMember{p1, p2})

		Convey("When recommending with jitter pinned to zero", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)

			Convey("Then exactly both candidates come back, origin first", func() {
				So(len(recs), ShouldEqual, 2)
				So(recs[0].EmpID, ShouldEqual, "P1")
				So(recs[0].Rank, ShouldEqual, 1)
				So(recs[0].CompositeScore, ShouldEqual, 100.0) // 80 base + 20 origin bonus
				So(recs[1].EmpID, ShouldEqual, "P2")
				So(recs[1].Rank, ShouldEqual, 2)
				So(recs[1].CompositeScore, ShouldEqual, 90.0) // 80 base + 10 destination bonus
			})

			Convey("And each record carries raw values and weights", func() {
				So(recs[0].AttributeValues["performanceScore"], ShouldEqual, 80.0)
				So(recs[0].Weights["fatigueScore"], ShouldEqual, 0.15)
				So(len(recs[0].AttributeValues), ShouldEqual, 17)
			})
		})

		Convey("When no crew holds the required qualification", func() {
			flight := flightDELBOM()
			flight.Aircraft = "B777"
			recs := eng.Recommend(context.Background(), flight, 5)

			Convey("Then the result is empty, not an error", func() {
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When topK is not positive", func() {
			So(eng.Recommend(context.Background(), flightDELBOM(), 0), ShouldBeEmpty)
		})
	})

	Convey("Given a roster where nobody is available", t, func() {
		p1 := member("P1", "DEL", model.Assigned, []string{"A320"}, 80)
		p2 := member("P2", "BOM", model.Unavailable, []string{"A320"}, 80)
		eng := newEngine([]*model.CrewMember{p1, p2})

		Convey("Then the result is empty", func() {
			So(eng.Recommend(context.Background(), flightDELBOM(), 5), ShouldBeEmpty)
		})
	})

	Convey("Given availability states with arbitrary casing", t, func() {
		p1 := member("P1", "DEL", model.Availability("available"), []string{"A320"}, 80)
		p2 := member("P2", "BOM", model.Availability("AVAILABLE"), []string{"A320"}, 80)
		eng := newEngine([]*model.CrewMember{p1, p2})

		Convey("Then the availability filter is case-insensitive", func() {
			So(len(eng.Recommend(context.Background(), flightDELBOM(), 5)), ShouldEqual, 2)
		})
	})

	Convey("Given a candidate based at an unknown location", t, func() {
		p1 := member("P1", "DEL", model.Available, []string{"A320"}, 80)
		p2 := member("P2", "JFK", model.Available, []string{"A320"}, 95)
		eng := newEngine([]*model.CrewMember{p1, p2})

		Convey("Then the unreachable candidate is filtered out", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(len(recs), ShouldEqual, 1)
			So(recs[0].EmpID, ShouldEqual, "P1")
		})
	})
}

func TestEngineBucketPrecedence(t *testing.T) {
	Convey("Given candidates in all three location buckets", t, func() {
		atOrigin := member("P1", "DEL", model.Available, []string{"A320"}, 70)
		atDestination := member("P2", "BOM", model.Available, []string{"A320"}, 75)
		other := member("P3", "BLR", model.Available, []string{"A320"}, 78)
		eng := newEngine([]*model.CrewMember{atOrigin, atDestination, other})

		Convey("When scoring with jitter pinned to zero", func() {
			// AI-302 -> digits 302 -> other-bucket addend 2
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)

			Convey("Then origin outranks destination outranks other despite lower bases", func() {
				So(len(recs), ShouldEqual, 3)
				So(recs[0].EmpID, ShouldEqual, "P1") // 70 + 20 = 90
				So(recs[1].EmpID, ShouldEqual, "P2") // 75 + 10 = 85
				So(recs[2].EmpID, ShouldEqual, "P3") // 78 + 2  = 80
				So(recs[0].CompositeScore, ShouldEqual, 90.0)
				So(recs[1].CompositeScore, ShouldEqual, 85.0)
				So(recs[2].CompositeScore, ShouldEqual, 80.0)
			})
		})
	})
}

func TestEngineMonotonicityAndTies(t *testing.T) {
	Convey("Given two at-origin candidates with different raw scores", t, func() {
		weaker := member("P1", "DEL", model.Available, []string{"A320"}, 72)
		stronger := member("P2", "DEL", model.Available, []string{"A320"}, 88)
		eng := newEngine([]*model.CrewMember{weaker, stronger})

		Convey("Then the higher composite score ranks first", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(recs[0].EmpID, ShouldEqual, "P2")
			So(recs[1].EmpID, ShouldEqual, "P1")
		})
	})

	Convey("Given two candidates with identical boosted scores", t, func() {
		b := member("PB", "DEL", model.Available, []string{"A320"}, 80)
		a := member("PA", "DEL", model.Available, []string{"A320"}, 80)
		eng := newEngine([]*model.CrewMember{b, a})

		Convey("Then ties break by ascending employee ID", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(recs[0].EmpID, ShouldEqual, "PA")
			So(recs[1].EmpID, ShouldEqual, "PB")
		})
	})

	Convey("Given more candidates than requested", t, func() {
		crew := []*model.CrewMember{
			member("P1", "DEL", model.Available, []string{"A320"}, 90),
			member("P2", "DEL", model.Available, []string{"A320"}, 85),
			member("P3", "BOM", model.Available, []string{"A320"}, 80),
			member("P4", "BLR", model.Available, []string{"A320"}, 75),
		}
		eng := newEngine(crew)

		Convey("Then the result is capped at topK", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 2)
			So(len(recs), ShouldEqual, 2)
			So(recs[0].EmpID, ShouldEqual, "P1")
			So(recs[1].EmpID, ShouldEqual, "P2")
		})
	})
}

func TestEngineKeyStrengths(t *testing.T) {
	Convey("Given a candidate with a few standout attributes", t, func() {
		p := member("P1", "DEL", model.Available, []string{"A320"}, 80)
		p.Attributes.Performance = 92
		p.Attributes.OnTimeRecord = 88
		p.Attributes.CertificationValid = 86
		eng := newEngine([]*model.CrewMember{p})

		Convey("Then only attributes above the threshold surface, humanized", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(len(recs), ShouldEqual, 1)
			So(recs[0].KeyStrengths, ShouldResemble, []string{
				"Performance",
				"On Time Record",
				"Certification Validity",
			})
		})
	})

	Convey("Given a candidate with no attribute above the threshold", t, func() {
		p := member("P1", "DEL", model.Available, []string{"A320"}, 85)
		eng := newEngine([]*model.CrewMember{p})

		Convey("Then the strengths list is empty (85 is not above 85)", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(recs[0].KeyStrengths, ShouldBeEmpty)
		})
	})
}

func TestEngineMalformedRecords(t *testing.T) {
	Convey("Given a candidate with zero-valued attributes", t, func() {
		sparse := member("P1", "DEL", model.Available, []string{"A320"}, 0)
		full := member("P2", "BOM", model.Available, []string{"A320"}, 80)
		eng := newEngine([]*model.CrewMember{sparse, full})

		Convey("Then scoring degrades gracefully instead of failing", func() {
			recs := eng.Recommend(context.Background(), flightDELBOM(), 5)
			So(len(recs), ShouldEqual, 2)
			So(recs[0].EmpID, ShouldEqual, "P2") // 80 + 10 beats 0 + 20
			So(recs[1].CompositeScore, ShouldEqual, 20.0)
		})
	})
}

func TestEngineAuxiliaryStructures(t *testing.T) {
	Convey("Given a roster with mixed availability", t, func() {
		p1 := member("P1", "DEL", model.Available, []string{"A320"}, 80)
		p2 := member("P2", "BOM", model.Standby, []string{"A320"}, 70)
		p3 := member("P3", "BLR", model.Availability("backup"), []string{"B737"}, 60)
		p1.Attributes.Fatigue = 30
		p2.Attributes.Fatigue = 10
		p3.Attributes.Fatigue = 20
		eng := newEngine([]*model.CrewMember{p1, p2, p3})

		Convey("Then the standby pool holds backups in roster order", func() {
			pool := eng.StandbyMembers()
			So(len(pool), ShouldEqual, 2)
			So(pool[0].EmpID, ShouldEqual, "P2")
			So(pool[1].EmpID, ShouldEqual, "P3")
		})

		Convey("And least-fatigued ordering follows the fatigue score", func() {
			least := eng.LeastFatigued(2)
			So(len(least), ShouldEqual, 2)
			So(least[0].EmpID, ShouldEqual, "P2")
			So(least[1].EmpID, ShouldEqual, "P3")
		})

		Convey("And the monitoring view does not drain the heap", func() {
			_ = eng.LeastFatigued(3)
			So(len(eng.LeastFatigued(3)), ShouldEqual, 3)
		})

		Convey("And the crew count reflects the snapshot", func() {
			So(eng.CrewCount(), ShouldEqual, 3)
		})
	})
}
