package totals

import (
	"math"
	"reflect"
	"testing"

	"bidworks/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func phaseWith(quantities map[entities.EquipmentType]float64) entities.Phase {
	p := entities.NewDefaultPhase()
	for t, q := range quantities {
		p.StandardEquipment[t] = entities.DynamicEquipmentInfo{Quantity: q}
	}
	return p
}

func TestTotalTripsPerPhase(t *testing.T) {
	t.Run("one trip per thirty barricades plus maintenance", func(t *testing.T) {
		p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentFourFootTypeIII: 40})
		p.MaintenanceTrips = 1
		if got := TotalTripsPerPhase(p); got != 3 {
			t.Fatalf("expected 3 trips, got %v", got)
		}
	})

	t.Run("empty phase still makes maintenance trips", func(t *testing.T) {
		p := entities.NewDefaultPhase()
		p.MaintenanceTrips = 2
		if got := TotalTripsPerPhase(p); got != 2 {
			t.Fatalf("expected 2 trips, got %v", got)
		}
	})
}

func TestCalculateTruckAndFuelCostSummary(t *testing.T) {
	admin := entities.AdminData{OWMileage: 30, FuelCostPerGallon: 4}
	rental := entities.NewDefaultMPTRental()
	rental.DispatchFee = 50
	rental.MPGPerTruck = 8

	phase := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentFourFootTypeIII: 40})
	phase.NumberTrucks = 2
	phase.MaintenanceTrips = 1
	rental.Phases = []entities.Phase{phase}

	got := CalculateTruckAndFuelCostSummary(admin, rental)
	if !almostEqual(got.MobilizationCost, 300) {
		t.Fatalf("expected mobilization 300, got %v", got.MobilizationCost)
	}
	if !almostEqual(got.FuelCost, 90) {
		t.Fatalf("expected fuel 90, got %v", got.FuelCost)
	}
	if !almostEqual(got.Revenue, 390) {
		t.Fatalf("expected revenue 390, got %v", got.Revenue)
	}
}

func TestRatedHoursPerPhase(t *testing.T) {
	t.Run("zero personnel means zero hours", func(t *testing.T) {
		p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentFourFootTypeIII: 50})
		if got := RatedHoursPerPhase(p); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("ten structures an hour out and back", func(t *testing.T) {
		p := phaseWith(map[entities.EquipmentType]float64{
			entities.EquipmentFourFootTypeIII: 12,
			entities.EquipmentHStand:          5,
			entities.EquipmentPost:            8,
		})
		p.Personnel = 2
		// ceil(25/10 * 2 * 2) = 10
		if got := RatedHoursPerPhase(p); got != 10 {
			t.Fatalf("expected 10 rated hours, got %v", got)
		}
	})
}

func TestNonRatedHoursPerPhase(t *testing.T) {
	admin := entities.AdminData{OWTravelTimeMins: 45}
	p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentFourFootTypeIII: 30})
	p.Personnel = 3
	p.MaintenanceTrips = 1
	// 0.75h one way, 2 trips, round trip, 3 crew = 9 hours
	if got := NonRatedHoursPerPhase(admin, p); !almostEqual(got, 9) {
		t.Fatalf("expected 9 non-rated hours, got %v", got)
	}
}

func TestCalculateSaleItemMargin(t *testing.T) {
	t.Run("markup scenario", func(t *testing.T) {
		item := entities.SaleItem{Quantity: 10, QuotePrice: 100, MarkupPercentage: 25}
		got := CalculateSaleItemMargin(item)
		if !almostEqual(got.SellingPrice, 1250) {
			t.Fatalf("expected selling price 1250, got %v", got.SellingPrice)
		}
		if !almostEqual(got.Margin, 20) {
			t.Fatalf("expected margin 20%%, got %v", got.Margin)
		}
	})

	t.Run("margin is per unit and independent of quantity", func(t *testing.T) {
		item := entities.SaleItem{Quantity: 0, QuotePrice: 100, MarkupPercentage: 25}
		got := CalculateSaleItemMargin(item)
		if !almostEqual(got.Margin, 20) {
			t.Fatalf("expected margin 20%% at zero quantity, got %v", got.Margin)
		}
		if got.SellingPrice != 0 || got.GrossProfit != 0 {
			t.Fatalf("selling price and profit must still scale with quantity: %+v", got)
		}
	})

	t.Run("zero quote guards the margin division", func(t *testing.T) {
		item := entities.SaleItem{Quantity: 5, QuotePrice: 0, MarkupPercentage: 10}
		got := CalculateSaleItemMargin(item)
		if got.Margin != 0 {
			t.Fatalf("expected margin 0, got %v", got.Margin)
		}
		if math.IsNaN(got.Margin) || math.IsInf(got.Margin, 0) {
			t.Fatalf("margin must stay finite, got %v", got.Margin)
		}
	})
}

func TestEquipmentQuantityTotals_WeightedDays(t *testing.T) {
	rental := entities.NewDefaultMPTRental()
	p1 := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentPost: 10})
	p1.Days = 30
	p2 := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentPost: 30})
	p2.Days = 10
	rental.Phases = []entities.Phase{p1, p2}

	got := EquipmentQuantityTotals(rental)[entities.EquipmentPost.RateKey()]
	if got.TotalQuantity != 40 {
		t.Fatalf("expected 40 posts, got %v", got.TotalQuantity)
	}
	// (10*30 + 30*10) / 40 = 15
	if !almostEqual(got.TotalDaysRequired, 15) {
		t.Fatalf("expected 15 weighted days, got %v", got.TotalDaysRequired)
	}
}

func TestEquipmentCostSummary(t *testing.T) {
	rental := entities.NewDefaultMPTRental()
	key := entities.EquipmentPost.RateKey()
	rental.StaticEquipmentInfo[key] = entities.StaticEquipmentInfo{
		Price:        100,
		DiscountRate: 10,
		UsefulLife:   10,
	}
	p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentPost: 5})
	p.Days = 365
	rental.Phases = []entities.Phase{p}
	// Zero out everything else so only posts contribute.
	for k, info := range rental.StaticEquipmentInfo {
		if k != key {
			info.Price = 0
			rental.StaticEquipmentInfo[k] = info
		}
	}

	got := EquipmentCostSummary(rental)
	if !almostEqual(got.Cost, 500) {
		t.Fatalf("expected cost 500, got %v", got.Cost)
	}
	if !almostEqual(got.Revenue, 450) {
		t.Fatalf("expected revenue 450, got %v", got.Revenue)
	}
	// 100/(10*365) * 365 * 5 = 50
	if !almostEqual(got.DepreciationCost, 50) {
		t.Fatalf("expected depreciation 50, got %v", got.DepreciationCost)
	}
}

func TestLightDailyRate(t *testing.T) {
	rental := entities.NewDefaultMPTRental()
	rental.TargetMOIC = 2
	rental.PaybackPeriod = 5
	rental.AnnualUtilization = 0.75
	// 113 * 2 / (5 * 0.75 * 365)
	want := 226.0 / 1368.75
	if got := LightDailyRate(rental, 113); !almostEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	rental.PaybackPeriod = 0
	if got := LightDailyRate(rental, 113); got != 0 {
		t.Fatalf("expected 0 with zero payback window, got %v", got)
	}
}

func TestCalculateLightAndDrumCostSummary_EmergencyOverride(t *testing.T) {
	admin := entities.AdminData{}
	admin.EmergencyFields.EmergencyBLites = 5

	rental := entities.NewDefaultMPTRental()
	p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentBLights: 10})
	p.Days = 3
	p.Emergency = true
	rental.Phases = []entities.Phase{p}

	got := CalculateLightAndDrumCostSummary(admin, rental)
	// 10 lights, 3 days, $5/day override
	if !almostEqual(got.StandardEquipment.Revenue, 150) {
		t.Fatalf("expected revenue 150 with override, got %v", got.StandardEquipment.Revenue)
	}
}

func TestCalculateLaborCostSummary(t *testing.T) {
	admin := entities.AdminData{
		Rated:            entities.RatedJob,
		OWTravelTimeMins: 60,
		County:           entities.County{LaborRate: 40, FringeRate: 10, ShopRate: 30},
	}
	rental := entities.NewDefaultMPTRental()
	p := phaseWith(map[entities.EquipmentType]float64{entities.EquipmentFourFootTypeIII: 30})
	p.Personnel = 1
	p.Days = 5
	rental.Phases = []entities.Phase{p}

	got := CalculateLaborCostSummary(admin, rental)
	// rated: ceil(30/10 * 1 * 2) = 6h at $50
	if !almostEqual(got.RatedLaborCost, 300) {
		t.Fatalf("expected rated cost 300, got %v", got.RatedLaborCost)
	}
	// non-rated: 1h one way, 1 trip, round trip = 2h at $30
	if !almostEqual(got.NonRatedLaborCost, 60) {
		t.Fatalf("expected non-rated cost 60, got %v", got.NonRatedLaborCost)
	}
	if !almostEqual(got.Revenue, 720) {
		t.Fatalf("expected revenue 720, got %v", got.Revenue)
	}
	if !almostEqual(got.GrossMargin, 50) {
		t.Fatalf("expected 50%% margin, got %v", got.GrossMargin)
	}
}

func TestCalculateFlaggingCostSummary(t *testing.T) {
	admin := entities.AdminData{
		Rated:            entities.RatedJob,
		OWTravelTimeMins: 30,
		OWMileage:        20,
		County: entities.County{
			FlaggingBaseRate:   20,
			FlaggingFringeRate: 5,
			FlaggingRate:       30,
		},
	}

	t.Run("overtime splits at eight hours", func(t *testing.T) {
		f := entities.Flagging{
			Personnel:      2,
			OnSiteJobHours: 600, // 10 hours
			MarkupRate:     20,
		}
		got := CalculateFlaggingCostSummary(admin, f, false)
		// straight: 8h * 2 * 25 = 400; overtime: 2h * 2 * 37.5 = 150
		if !almostEqual(got.OnSiteHoursCost, 550) {
			t.Fatalf("expected on-site cost 550, got %v", got.OnSiteHoursCost)
		}
		if !almostEqual(got.OvertimeHoursCost, 150) {
			t.Fatalf("expected overtime cost 150, got %v", got.OvertimeHoursCost)
		}
		// travel at time and a half: 1h * 45 * 2 = 90
		if !almostEqual(got.TravelHoursCost, 90) {
			t.Fatalf("expected travel cost 90, got %v", got.TravelHoursCost)
		}
	})

	t.Run("liability and comp fall back to defaults", func(t *testing.T) {
		f := entities.Flagging{Personnel: 1, OnSiteJobHours: 60}
		got := CalculateFlaggingCostSummary(admin, f, false)
		hoursCost := got.TotalHoursCost
		want := hoursCost + hoursCost/1000*113.55 + hoursCost/100*4.96
		if !almostEqual(got.TotalLaborCost, want) {
			t.Fatalf("expected labor cost %v, got %v", want, got.TotalLaborCost)
		}
	})

	t.Run("standard pricing replaces the markup path", func(t *testing.T) {
		f := entities.Flagging{
			Personnel:       2,
			OnSiteJobHours:  480,
			StandardPricing: true,
			StandardLumpSum: 1800,
		}
		got := CalculateFlaggingCostSummary(admin, f, false)
		if !almostEqual(got.TotalRevenue, 1800) {
			t.Fatalf("expected lump sum revenue 1800, got %v", got.TotalRevenue)
		}
		if got.TotalFlaggingCost != 0 {
			t.Fatalf("expected zero cost under standard pricing, got %v", got.TotalFlaggingCost)
		}
	})
}

func TestCalculateRentalSummary(t *testing.T) {
	t.Run("grouped by name with depreciation", func(t *testing.T) {
		items := []entities.EquipmentRentalItem{
			{Name: "Arrow Board", Quantity: 2, Months: 3, RentPrice: 500, TotalCost: 12000, UsefulLifeYrs: 5},
		}
		got := CalculateRentalSummary(items)
		if len(got.Items) != 1 {
			t.Fatalf("expected 1 group, got %d", len(got.Items))
		}
		if !almostEqual(got.TotalRevenue, 3000) {
			t.Fatalf("expected revenue 3000, got %v", got.TotalRevenue)
		}
		// 12000/(5*12) * 3 * 2 = 1200
		if !almostEqual(got.TotalCost, 1200) {
			t.Fatalf("expected depreciation 1200, got %v", got.TotalCost)
		}
	})

	t.Run("re-rent carries the handling burden", func(t *testing.T) {
		items := []entities.EquipmentRentalItem{
			{Name: "Message Board", Quantity: 1, Months: 2, RentPrice: 900, ReRentForCurrentJob: true, ReRentPrice: 600},
		}
		got := CalculateRentalSummary(items)
		if !almostEqual(got.TotalRevenue, 1800) {
			t.Fatalf("expected revenue 1800, got %v", got.TotalRevenue)
		}
		if !almostEqual(got.TotalCost, 600*1.06*2) {
			t.Fatalf("expected re-rent cost %v, got %v", 600*1.06*2, got.TotalCost)
		}
	})

	t.Run("unnamed lines are skipped", func(t *testing.T) {
		items := []entities.EquipmentRentalItem{{Quantity: 3, Months: 1, RentPrice: 100}}
		got := CalculateRentalSummary(items)
		if len(got.Items) != 0 || got.TotalRevenue != 0 {
			t.Fatalf("expected empty summary, got %+v", got)
		}
	})
}

func TestGetAllTotals(t *testing.T) {
	buildEstimate := func() entities.Estimate {
		e := entities.NewDefaultEstimate()
		e.AdminData.OWMileage = 30
		e.AdminData.FuelCostPerGallon = 4
		e.AdminData.County = entities.County{LaborRate: 40, FringeRate: 10, ShopRate: 30}
		phase := phaseWith(map[entities.EquipmentType]float64{
			entities.EquipmentFourFootTypeIII: 40,
			entities.EquipmentBLights:         10,
		})
		phase.Days = 20
		phase.Personnel = 2
		phase.NumberTrucks = 2
		phase.MaintenanceTrips = 1
		e.MPTRental.Phases = []entities.Phase{phase}
		e.SaleItems = []entities.SaleItem{{ID: "s1", Quantity: 10, QuotePrice: 100, MarkupPercentage: 25}}
		return e
	}

	t.Run("deterministic and idempotent", func(t *testing.T) {
		e := buildEstimate()
		first := GetAllTotals(e)
		second := GetAllTotals(e)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical results, got %+v vs %+v", first, second)
		}
	})

	t.Run("revenue shares sum to one hundred", func(t *testing.T) {
		got := GetAllTotals(buildEstimate())
		sum := got.RevenueShares.MPT + got.RevenueShares.Rental + got.RevenueShares.Flagging +
			got.RevenueShares.Sale + got.RevenueShares.PermanentSigns
		if !almostEqual(sum, 100) {
			t.Fatalf("expected shares to sum to 100, got %v", sum)
		}
	})

	t.Run("empty estimate stays finite", func(t *testing.T) {
		got := GetAllTotals(entities.NewDefaultEstimate())
		for name, v := range map[string]float64{
			"totalRevenue":     got.TotalRevenue,
			"totalGrossMargin": got.TotalGrossMargin,
			"mptGrossMargin":   got.MPTGrossMargin,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s must stay finite, got %v", name, v)
			}
		}
	})
}
