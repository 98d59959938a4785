package reducer

import (
	"strings"

	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

// reduceUpdateAdminData sets one admin field by key. Dotted keys
// address the county and emergencyFields blocks; unknown keys leave the
// state untouched.
func reduceUpdateAdminData(state entities.Estimate, a actions.UpdateAdminData) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		if parent, child, ok := strings.Cut(a.Key, "."); ok {
			switch parent {
			case "county":
				applyCountyField(&next.AdminData.County, child, a.Value)
			case "emergencyFields":
				applyEmergencyField(&next.AdminData.EmergencyFields, child, a.Value)
			}
			return
		}
		applyAdminField(&next.AdminData, a.Key, a.Value)
	})
}

func reduceCopyAdminData(state entities.Estimate, a actions.CopyAdminData) entities.Estimate {
	return withClone(state, func(next *entities.Estimate) {
		next.AdminData = a.AdminData.Clone()
	})
}

func applyAdminField(admin *entities.AdminData, key string, value any) {
	switch key {
	case "contractNumber":
		admin.ContractNumber = asString(value)
	case "owner":
		admin.Owner = asString(value)
	case "estimator":
		admin.Estimator = asString(value)
	case "division":
		admin.Division = asString(value)
	case "lettingDate":
		admin.LettingDate = asTime(value)
	case "startDate":
		admin.StartDate = asTime(value)
	case "endDate":
		admin.EndDate = asTime(value)
	case "winterStart":
		admin.WinterStart = asTime(value)
	case "winterEnd":
		admin.WinterEnd = asTime(value)
	case "srRoute":
		admin.SRRoute = asString(value)
	case "location":
		admin.Location = asString(value)
	case "dbePercentage":
		admin.DBEPercentage = nonNegative(asFloat(value))
	case "rated":
		if s := asString(value); s == string(entities.RatedJob) || s == string(entities.NonRatedJob) {
			admin.Rated = entities.RatedStatus(s)
		}
	case "owTravelTimeMins":
		admin.OWTravelTimeMins = nonNegative(asFloat(value))
	case "owMileage":
		admin.OWMileage = nonNegative(asFloat(value))
	case "fuelCostPerGallon":
		admin.FuelCostPerGallon = nonNegative(asFloat(value))
	case "emergencyJob":
		admin.EmergencyJob = asBool(value)
	}
}

func applyCountyField(county *entities.County, key string, value any) {
	switch key {
	case "name":
		county.Name = asString(value)
	case "branch":
		county.Branch = asString(value)
	case "laborRate":
		county.LaborRate = nonNegative(asFloat(value))
	case "fringeRate":
		county.FringeRate = nonNegative(asFloat(value))
	case "shopRate":
		county.ShopRate = nonNegative(asFloat(value))
	case "flaggingBaseRate":
		county.FlaggingBaseRate = nonNegative(asFloat(value))
	case "flaggingFringeRate":
		county.FlaggingFringeRate = nonNegative(asFloat(value))
	case "flaggingRate":
		county.FlaggingRate = nonNegative(asFloat(value))
	}
}

func applyEmergencyField(fields *entities.EmergencyFields, key string, value any) {
	switch key {
	case "emergencyBLites":
		fields.EmergencyBLites = nonNegative(asFloat(value))
	case "emergencyACLites":
		fields.EmergencyACLites = nonNegative(asFloat(value))
	case "emergencyHIVerticalPanels":
		fields.EmergencyHIVerticalPanels = nonNegative(asFloat(value))
	case "emergencyTypeXIVerticalPanels":
		fields.EmergencyTypeXIVerticalPanels = nonNegative(asFloat(value))
	case "emergencySharps":
		fields.EmergencySharps = nonNegative(asFloat(value))
	}
}
