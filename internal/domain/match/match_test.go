package match_test

import (
	"testing"

	match "github.com/okian/gelora/internal/domain/match"
	"github.com/okian/gelora/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveCascade(t *testing.T) {
	Convey("Given a target and a candidate pool", t, func() {
		target := match.Target{
			Name:     "John",
			FullName: "John Smith",
			Team:     "FC Alpha",
		}

		Convey("When an exact full-name candidate on the same team exists", func() {
			pool := []model.StatRecord{
				{PlayerName: "john smith", Team: "FC Alpha", RawValue: "1"},
				{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "2"},
				{PlayerName: "John", Team: "FC Alpha", RawValue: "3"},
			}
			rec, tier := match.Resolve(target, pool)
			So(rec, ShouldNotBeNil)
			So(tier, ShouldEqual, match.TierExactFullNameTeam)
			So(rec.RawValue, ShouldEqual, "2")
		})

		Convey("When only the short name matches exactly", func() {
			pool := []model.StatRecord{
				{PlayerName: "John", Team: "FC Alpha", RawValue: "3"},
				{PlayerName: "JOHN SMITH", Team: "FC Alpha", RawValue: "4"},
			}
			rec, tier := match.Resolve(target, pool)
			So(tier, ShouldEqual, match.TierExactNameTeam)
			So(rec.RawValue, ShouldEqual, "3")
		})

		Convey("When only a cleaned full-name candidate exists", func() {
			pool := []model.StatRecord{
				{PlayerName: "  john   SMITH ", Team: "FC Alpha", RawValue: "5"},
			}
			rec, tier := match.Resolve(target, pool)
			So(tier, ShouldEqual, match.TierCleanFullNameTeam)
			So(rec.RawValue, ShouldEqual, "5")
		})

		Convey("When only a cleaned short-name candidate exists", func() {
			pool := []model.StatRecord{
				{PlayerName: " JOHN ", Team: "FC Alpha", RawValue: "6"},
			}
			rec, tier := match.Resolve(target, pool)
			So(tier, ShouldEqual, match.TierCleanNameTeam)
			So(rec.RawValue, ShouldEqual, "6")
		})

		Convey("When the only name match plays for a different team", func() {
			pool := []model.StatRecord{
				{PlayerName: "John Smith", Team: "FC Beta", RawValue: "9"},
			}
			rec, tier := match.Resolve(target, pool)
			So(rec, ShouldBeNil)
			So(tier, ShouldEqual, match.TierNone)
		})

		Convey("When the pool is empty", func() {
			rec, tier := match.Resolve(target, nil)
			So(rec, ShouldBeNil)
			So(tier, ShouldEqual, match.TierNone)
		})

		Convey("When the target has no full name", func() {
			partial := match.Target{Name: "John", Team: "FC Alpha"}
			pool := []model.StatRecord{
				{PlayerName: "John", Team: "FC Alpha", RawValue: "7"},
			}
			rec, tier := match.Resolve(partial, pool)
			So(tier, ShouldEqual, match.TierExactNameTeam)
			So(rec.RawValue, ShouldEqual, "7")
		})
	})
}

func TestResolveOrderIndependence(t *testing.T) {
	Convey("Given two candidates that tie within one strategy", t, func() {
		target := match.Target{Name: "John", FullName: "John Smith", Team: "FC Alpha"}
		a := model.StatRecord{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "1"}
		b := model.StatRecord{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "1"}

		Convey("Then the resolved tier is identical for both pool orders", func() {
			_, tierAB := match.Resolve(target, []model.StatRecord{a, b})
			_, tierBA := match.Resolve(target, []model.StatRecord{b, a})
			So(tierAB, ShouldEqual, tierBA)
		})
	})

	Convey("Given candidates at different tiers shuffled in the pool", t, func() {
		target := match.Target{Name: "John", FullName: "John Smith", Team: "FC Alpha"}
		exact := model.StatRecord{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "exact"}
		clean := model.StatRecord{PlayerName: " john smith ", Team: "FC Alpha", RawValue: "clean"}

		Convey("Then the exact candidate wins regardless of position", func() {
			recA, _ := match.Resolve(target, []model.StatRecord{clean, exact})
			recB, _ := match.Resolve(target, []model.StatRecord{exact, clean})
			So(recA.RawValue, ShouldEqual, "exact")
			So(recB.RawValue, ShouldEqual, "exact")
		})
	})
}

func TestResolveLoose(t *testing.T) {
	Convey("Given a target with no reliable team tag in the pool", t, func() {
		target := match.Target{Name: "John", FullName: "John Smith", Team: "FC Alpha"}

		Convey("When a candidate matches the full name on another team", func() {
			pool := []model.StatRecord{
				{PlayerName: "John Smith", Team: "FC Beta", RawValue: "1"},
			}
			rec, tier := match.ResolveLoose(target, pool)
			So(rec, ShouldNotBeNil)
			So(tier, ShouldEqual, match.TierLooseExactFullName)
			So(tier.TeamValidated(), ShouldBeFalse)
			So(tier.Matched(), ShouldBeTrue)
		})

		Convey("When only a containment match exists", func() {
			pool := []model.StatRecord{
				{PlayerName: "J. Smith", Team: "", RawValue: "2"},
				{PlayerName: "Smith", Team: "", RawValue: "3"},
			}
			rec, tier := match.ResolveLoose(target, pool)
			So(tier, ShouldEqual, match.TierLooseContains)
			So(rec, ShouldNotBeNil)
		})

		Convey("When nothing matches at all", func() {
			pool := []model.StatRecord{
				{PlayerName: "Somebody Else", Team: "FC Beta", RawValue: "4"},
			}
			rec, tier := match.ResolveLoose(target, pool)
			So(rec, ShouldBeNil)
			So(tier, ShouldEqual, match.TierNone)
		})
	})
}

func TestTier(t *testing.T) {
	Convey("Given the tier ordering", t, func() {
		Convey("Then team-validated tiers classify as such", func() {
			So(match.TierExactFullNameTeam.TeamValidated(), ShouldBeTrue)
			So(match.TierCleanNameTeam.TeamValidated(), ShouldBeTrue)
			So(match.TierLooseExactName.TeamValidated(), ShouldBeFalse)
			So(match.TierNone.TeamValidated(), ShouldBeFalse)
		})

		Convey("Then Stronger picks the higher-confidence tier", func() {
			So(match.Stronger(match.TierCleanNameTeam, match.TierExactNameTeam), ShouldEqual, match.TierExactNameTeam)
			So(match.Stronger(match.TierNone, match.TierLooseContains), ShouldEqual, match.TierLooseContains)
		})

		Convey("Then labels are stable", func() {
			So(match.TierExactFullNameTeam.String(), ShouldEqual, "exact-fullname-team")
			So(match.TierNone.String(), ShouldEqual, "no-match")
		})
	})
}
