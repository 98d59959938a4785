// Package reducer is the state-transition engine of a bid editing
// session. Reduce is pure and total: it never performs I/O, never
// mutates its input, and always returns a valid next aggregate.
// Actions that reference a phase, sign, or item that no longer exists
// return the prior state unchanged.
package reducer

import (
	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

// Reduce applies one action to the aggregate and returns the next
// state. The prior state is never modified.
func Reduce(state entities.Estimate, action actions.Action) entities.Estimate {
	switch a := action.(type) {
	case actions.UpdateAdminData:
		return reduceUpdateAdminData(state, a)
	case actions.CopyAdminData:
		return reduceCopyAdminData(state, a)

	case actions.AddMPTPhase:
		return reduceAddPhase(state)
	case actions.DeleteMPTPhase:
		return reduceDeletePhase(state, a)
	case actions.UpdatePhaseName:
		return reduceUpdatePhaseName(state, a)
	case actions.UpdateMPTPhaseStartEnd:
		return reduceUpdatePhaseStartEnd(state, a)
	case actions.UpdateMPTPhaseTripAndLabor:
		return reduceUpdatePhaseTripAndLabor(state, a)
	case actions.UpdateMPTPhaseEmergency:
		return reduceUpdatePhaseEmergency(state, a)

	case actions.UpdateTruckAndFuelCosts:
		return reduceUpdateTruckAndFuelCosts(state, a)
	case actions.UpdatePaybackCalculations:
		return reduceUpdatePaybackCalculations(state, a)
	case actions.UpdateStaticEquipmentInfo:
		return reduceUpdateStaticEquipmentInfo(state, a)

	case actions.AddMPTItemNotSign:
		return reduceAddItemNotSign(state, a)
	case actions.AddLightAndDrumCustomItem:
		return reduceAddCustomItem(state, a)
	case actions.UpdateLightAndDrumCustomItem:
		return reduceUpdateCustomItem(state, a)
	case actions.DeleteLightAndDrumCustomItem:
		return reduceDeleteCustomItem(state, a)

	case actions.AddMPTSign:
		return reduceAddSign(state, a)
	case actions.AddBatchMPTSigns:
		return reduceAddBatchSigns(state, a)
	case actions.UpdateMPTSign:
		return reduceUpdateSign(state, a)
	case actions.DeleteMPTSign:
		return reduceDeleteSign(state, a)
	case actions.ResetMPTPhaseSigns:
		return reduceResetPhaseSigns(state, a)
	case actions.RefreshMPTPhaseSigns:
		return reduceRefreshPhaseSigns(state, a)

	case actions.AddFlagging:
		return withClone(state, func(next *entities.Estimate) {
			next.Flagging = entities.NewDefaultFlagging()
		})
	case actions.UpdateFlagging:
		return withClone(state, func(next *entities.Estimate) {
			applyFlaggingField(&next.Flagging, a.Key, a.Value)
		})
	case actions.DeleteFlagging:
		return withClone(state, func(next *entities.Estimate) {
			next.Flagging = entities.NewDefaultFlagging()
		})
	case actions.AddServiceWork:
		return withClone(state, func(next *entities.Estimate) {
			next.ServiceWork = entities.NewDefaultFlagging()
		})
	case actions.UpdateServiceWork:
		return withClone(state, func(next *entities.Estimate) {
			applyFlaggingField(&next.ServiceWork, a.Key, a.Value)
		})
	case actions.DeleteServiceWork:
		return withClone(state, func(next *entities.Estimate) {
			next.ServiceWork = entities.NewDefaultFlagging()
		})

	case actions.AddRentalItem:
		return reduceAddRentalItem(state, a)
	case actions.UpdateRentalItem:
		return reduceUpdateRentalItem(state, a)
	case actions.DeleteRentalItem:
		return reduceDeleteRentalItem(state, a)

	case actions.AddSaleItem:
		return reduceAddSaleItem(state, a)
	case actions.UpdateSaleItem:
		return reduceUpdateSaleItem(state, a)
	case actions.DeleteSaleItem:
		return reduceDeleteSaleItem(state, a)
	case actions.ResetSaleItems:
		return withClone(state, func(next *entities.Estimate) {
			next.SaleItems = []entities.SaleItem{}
		})

	case actions.AddPermanentSignsItem:
		return reduceAddPermanentSignsItem(state, a)
	case actions.UpdatePermanentSignsItem:
		return reduceUpdatePermanentSignsItem(state, a)
	case actions.DeletePermanentSignsItem:
		return reduceDeletePermanentSignsItem(state, a)
	case actions.UpdatePermanentSignsMarkup:
		return withClone(state, func(next *entities.Estimate) {
			next.PermanentSigns.ItemMarkup = nonNegative(a.Value)
		})

	case actions.CopyMPTRental:
		return reduceCopyMPTRental(state, a)
	case actions.CopyEquipmentRental:
		return withClone(state, func(next *entities.Estimate) {
			next.EquipmentRental = append([]entities.EquipmentRentalItem{}, a.Items...)
		})
	case actions.CopyFlagging:
		return withClone(state, func(next *entities.Estimate) {
			next.Flagging = a.Flagging
		})
	case actions.CopyServiceWork:
		return withClone(state, func(next *entities.Estimate) {
			next.ServiceWork = a.ServiceWork
		})
	case actions.CopySaleItems:
		return withClone(state, func(next *entities.Estimate) {
			next.SaleItems = append([]entities.SaleItem{}, a.Items...)
		})
	case actions.CopyPermanentSigns:
		return withClone(state, func(next *entities.Estimate) {
			next.PermanentSigns = a.PermanentSigns.Clone()
		})
	case actions.CopyNotes:
		return withClone(state, func(next *entities.Estimate) {
			next.Notes = a.Notes
		})

	case actions.UpdateNotes:
		return withClone(state, func(next *entities.Estimate) {
			next.Notes = a.Notes
		})
	case actions.SetRatesAcknowledged:
		return withClone(state, func(next *entities.Estimate) {
			next.RatesAcknowledged = a.Value
		})
	case actions.ResetState:
		return entities.NewDefaultEstimate()

	default:
		return state
	}
}

// withClone runs a mutation against a deep copy of the state. Every
// handler goes through it so the prior aggregate is never aliased.
func withClone(state entities.Estimate, fn func(*entities.Estimate)) entities.Estimate {
	next := state.Clone()
	fn(&next)
	return next
}
