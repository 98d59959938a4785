package totals

import "bidworks/internal/domain/entities"

// Insurance and fuel fallbacks applied when a flagging record leaves
// the field at zero.
const (
	defaultGeneralLiability = 113.55 // per $1000 of labor
	defaultWorkerComp       = 4.96   // per $100 of labor
	defaultFuelEconomyMPG   = 20.0
	defaultTruckDispatchFee = 18.75
)

// FlaggingCostSummary is the rollup of one flagging or service-work
// record.
type FlaggingCostSummary struct {
	OnSiteHoursCost    float64 `json:"onSiteHoursCost"`
	TravelHoursCost    float64 `json:"travelHoursCost"`
	OvertimeHoursCost  float64 `json:"overtimeHoursCost"`
	TotalHoursCost     float64 `json:"totalHoursCost"`
	TotalFuelCost      float64 `json:"totalFuelCost"`
	TotalLaborCost     float64 `json:"totalLaborCost"`
	TotalFlaggingCost  float64 `json:"totalFlaggingCost"`
	TotalCostPerHour   float64 `json:"totalCostPerHour"`
	TotalEquipmentCost float64 `json:"totalEquipmentCost"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalHours         float64 `json:"totalHours"`
}

// CalculateFlaggingCostSummary prices a flagging crew day. Service
// work is the same calculation against the county labor rates instead
// of the flagging rates. On-site time past eight hours pays time and a
// half; travel pays the flat crew rate, itself at time and a half once
// the day runs long.
func CalculateFlaggingCostSummary(admin entities.AdminData, f entities.Flagging, isServiceWork bool) FlaggingCostSummary {
	onSiteHours := f.OnSiteJobHours / 60
	travelHoursRT := admin.OWTravelTimeMins / 60 * 2

	laborRate := admin.County.FlaggingBaseRate
	fringeRate := admin.County.FlaggingFringeRate
	crewRate := admin.County.FlaggingRate
	if isServiceWork {
		laborRate = admin.County.LaborRate
		fringeRate = admin.County.FringeRate
		crewRate = admin.County.ShopRate
	}

	payRate := crewRate
	if admin.Rated == entities.RatedJob {
		payRate = laborRate + fringeRate
	}

	straightHours := onSiteHours
	overtimeHours := 0.0
	if onSiteHours > 8 {
		straightHours = 8
		overtimeHours = onSiteHours - 8
	}
	straightCost := straightHours * f.Personnel * payRate
	overtimeCost := overtimeHours * f.Personnel * payRate * 1.5
	onSiteCost := straightCost + overtimeCost

	travelRate := crewRate
	if onSiteHours > 8 {
		travelRate = crewRate * 1.5
	}
	travelCost := travelHoursRT * travelRate * f.Personnel

	hoursCost := onSiteCost + travelCost

	generalLiability := f.GeneralLiability
	if generalLiability == 0 {
		generalLiability = defaultGeneralLiability
	}
	workerComp := f.WorkerComp
	if workerComp == 0 {
		workerComp = defaultWorkerComp
	}
	laborCost := hoursCost + hoursCost/1000*generalLiability + hoursCost/100*workerComp

	fuelCost := 0.0
	if f.NumberTrucks > 0 {
		mpg := f.FuelEconomyMPG
		if mpg == 0 {
			mpg = defaultFuelEconomyMPG
		}
		dispatch := f.TruckDispatchFee
		if dispatch == 0 {
			dispatch = defaultTruckDispatchFee
		}
		fuelCost = f.NumberTrucks*admin.OWMileage*f.FuelCostPerGallon/mpg + dispatch
	}

	flaggingCost := 0.0
	if !f.StandardPricing {
		flaggingCost = laborCost + fuelCost + f.AdditionalEquipmentCost
	}

	totalHours := onSiteHours + travelHoursRT
	costPerHour := 0.0
	if totalHours > 0 && f.Personnel > 0 {
		costPerHour = flaggingCost / (totalHours * f.Personnel)
	}

	equipmentCost := lumpSumEquipment(f.ArrowBoards) + lumpSumEquipment(f.MessageBoards) + lumpSumEquipment(f.TMA)

	revenueNoEquip := 0.0
	if f.StandardPricing {
		revenueNoEquip = f.StandardLumpSum
	} else if f.MarkupRate < 100 {
		revenueNoEquip = flaggingCost / (1 - f.MarkupRate/100)
	}

	return FlaggingCostSummary{
		OnSiteHoursCost:    onSiteCost,
		TravelHoursCost:    travelCost,
		OvertimeHoursCost:  overtimeCost,
		TotalHoursCost:     hoursCost,
		TotalFuelCost:      fuelCost,
		TotalLaborCost:     laborCost,
		TotalFlaggingCost:  flaggingCost,
		TotalCostPerHour:   costPerHour,
		TotalEquipmentCost: equipmentCost,
		TotalRevenue:       revenueNoEquip + equipmentCost,
		TotalHours:         totalHours,
	}
}

func lumpSumEquipment(e entities.FlaggingEquipment) float64 {
	if !e.IncludeInLumpSum {
		return 0
	}
	return e.Quantity * e.Cost
}
