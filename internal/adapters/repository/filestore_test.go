package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crewsync/backend/internal/adapters/repository"
	"github.com/crewsync/backend/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const crewJSON = `[
  {
    "emp_id": "CRW001",
    "name": "Rajesh Kumar",
    "designation": "Captain",
    "baseLocation": "DEL",
    "availability": "Available",
    "qualifications": ["A320"],
    "attributes": {"fatigueScore": 30, "performanceScore": 88}
  },
  {
    "emp_id": "CRW002",
    "name": "Priya Sharma",
    "designation": "First Officer",
    "baseLocation": "BOM",
    "availability": "Assigned",
    "assignedFlight": "AI-101",
    "qualifications": ["A320", "B737"],
    "attributes": {"fatigueScore": 55, "performanceScore": 74}
  }
]`

const flightsJSON = `[
  {
    "flightNumber": "AI-302",
    "aircraft": "A320",
    "origin": "DEL",
    "destination": "BOM",
    "route": "Delhi - Mumbai",
    "crewRequired": 6,
    "crewAssigned": 4
  }
]`

func newStore(t *testing.T) *repository.FileStore {
	t.Helper()
	dir := t.TempDir()
	crewPath := filepath.Join(dir, "crew_data.json")
	flightsPath := filepath.Join(dir, "flights_data.json")
	if err := os.WriteFile(crewPath, []byte(crewJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(flightsPath, []byte(flightsJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return repository.NewFileStore(crewPath, flightsPath)
}

func TestFileStoreReads(t *testing.T) {
	Convey("Given a store over record files", t, func() {
		ctx := context.Background()
		store := newStore(t)

		Convey("Then the roster loads with typed attributes", func() {
			crew, err := store.Roster(ctx)
			So(err, ShouldBeNil)
			So(len(crew), ShouldEqual, 2)
			So(crew[0].EmpID, ShouldEqual, "CRW001")
			So(crew[0].Attributes.Fatigue, ShouldEqual, 30.0)
			So(crew[0].Attributes.RestPeriod, ShouldEqual, 0.0) // absent in record
		})

		Convey("And lookups by ID and flight number work", func() {
			member, err := store.CrewByID(ctx, "CRW002")
			So(err, ShouldBeNil)
			So(member.Name, ShouldEqual, "Priya Sharma")

			flight, err := store.FlightByNumber(ctx, "AI-302")
			So(err, ShouldBeNil)
			So(flight.Origin, ShouldEqual, "DEL")
		})

		Convey("And unknown identifiers yield sentinel errors", func() {
			_, err := store.CrewByID(ctx, "CRW999")
			So(errors.Is(err, repository.ErrCrewNotFound), ShouldBeTrue)

			_, err = store.FlightByNumber(ctx, "XX-000")
			So(errors.Is(err, repository.ErrFlightNotFound), ShouldBeTrue)
		})

		Convey("And consecutive reads return independent snapshots", func() {
			first, err := store.Roster(ctx)
			So(err, ShouldBeNil)
			first[0].Availability = model.Unavailable

			second, err := store.Roster(ctx)
			So(err, ShouldBeNil)
			So(second[0].Availability.IsAvailable(), ShouldBeTrue)
		})
	})
}

func TestFileStoreAssign(t *testing.T) {
	Convey("Given a store over record files", t, func() {
		ctx := context.Background()
		store := newStore(t)

		Convey("When assigning an available member", func() {
			member, err := store.Assign(ctx, "CRW001", "AI-302")

			Convey("Then the mutation succeeds and persists", func() {
				So(err, ShouldBeNil)
				So(member.Availability, ShouldEqual, model.Assigned)
				So(member.AssignedFlight, ShouldEqual, "AI-302")

				reloaded, err := store.CrewByID(ctx, "CRW001")
				So(err, ShouldBeNil)
				So(reloaded.Availability, ShouldEqual, model.Assigned)
				So(reloaded.AssignedFlight, ShouldEqual, "AI-302")
			})

			Convey("And assigning the same member again is rejected", func() {
				So(err, ShouldBeNil)
				_, err := store.Assign(ctx, "CRW001", "AI-101")
				So(errors.Is(err, repository.ErrNotAvailable), ShouldBeTrue)
			})
		})

		Convey("When assigning a member who is not available", func() {
			_, err := store.Assign(ctx, "CRW002", "AI-302")
			So(errors.Is(err, repository.ErrNotAvailable), ShouldBeTrue)
		})

		Convey("When assigning an unknown member", func() {
			_, err := store.Assign(ctx, "CRW999", "AI-302")
			So(errors.Is(err, repository.ErrCrewNotFound), ShouldBeTrue)
		})
	})
}
