package reducer

import (
	"reflect"
	"testing"

	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

func TestReduce_SaleItems(t *testing.T) {
	t.Run("add assigns a surrogate id and clamps negatives", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{
			ItemNumber: "0901-0001", Description: "Drums", Quantity: -4, QuotePrice: 100,
		}})

		if len(state.SaleItems) != 1 {
			t.Fatalf("expected one sale item, got %d", len(state.SaleItems))
		}
		item := state.SaleItems[0]
		if item.ID == "" {
			t.Fatalf("expected a generated id")
		}
		if item.Quantity != 0 {
			t.Fatalf("negative quantity should clamp to 0, got %v", item.Quantity)
		}
	})

	t.Run("update replaces the line but keeps its id, including itemNumber renames", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{ID: "sale-1", ItemNumber: "0901-0001", Quantity: 2, QuotePrice: 100}})

		state = Reduce(state, actions.UpdateSaleItem{ID: "sale-1", Item: entities.SaleItem{
			ID: "tampered", ItemNumber: "0901-0002", Quantity: 5, QuotePrice: 110, MarkupPercentage: 25,
		}})

		item := state.SaleItems[0]
		if item.ID != "sale-1" {
			t.Fatalf("surrogate id must survive updates, got %q", item.ID)
		}
		if item.ItemNumber != "0901-0002" || item.Quantity != 5 || item.MarkupPercentage != 25 {
			t.Fatalf("update not applied: %+v", item)
		}
	})

	t.Run("stale id update is a no-op", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{ID: "sale-1", Quantity: 2, QuotePrice: 100}})

		next := Reduce(state, actions.UpdateSaleItem{ID: "ghost", Item: entities.SaleItem{Quantity: 9}})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("stale sale item id must leave the state untouched")
		}
	})

	t.Run("delete removes by id and ignores unknown ids", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{ID: "sale-1", Quantity: 1}})
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{ID: "sale-2", Quantity: 1}})

		state = Reduce(state, actions.DeleteSaleItem{ID: "sale-1"})
		if len(state.SaleItems) != 1 || state.SaleItems[0].ID != "sale-2" {
			t.Fatalf("expected sale-2 to survive, got %+v", state.SaleItems)
		}

		next := Reduce(state, actions.DeleteSaleItem{ID: "ghost"})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("stale sale item id must leave the state untouched")
		}
	})

	t.Run("reset empties the list", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddSaleItem{Item: entities.SaleItem{ID: "sale-1", Quantity: 1}})
		state = Reduce(state, actions.ResetSaleItems{})
		if len(state.SaleItems) != 0 {
			t.Fatalf("expected empty sale items, got %d", len(state.SaleItems))
		}
	})
}

func TestReduce_LightAndDrumCustomItems(t *testing.T) {
	t.Run("add clamps negatives onto the phase", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddLightAndDrumCustomItem{Phase: 0, Item: entities.CustomLightAndDrumItem{
			ID: "cust-1", Quantity: -3, Cost: 42.50, UsefulLife: 5,
		}})

		items := state.MPTRental.Phases[0].CustomLightAndDrumItems
		if len(items) != 1 {
			t.Fatalf("expected one custom item, got %d", len(items))
		}
		if items[0].Quantity != 0 || items[0].Cost != 42.50 {
			t.Fatalf("clamping not applied: %+v", items[0])
		}
	})

	t.Run("update patches one property by id", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddLightAndDrumCustomItem{Phase: 0, Item: entities.CustomLightAndDrumItem{
			ID: "cust-1", Quantity: 10, Cost: 42.50, UsefulLife: 5,
		}})

		state = Reduce(state, actions.UpdateLightAndDrumCustomItem{Phase: 0, ID: "cust-1", Key: "cost", Value: 55})
		if got := state.MPTRental.Phases[0].CustomLightAndDrumItems[0].Cost; got != 55 {
			t.Fatalf("expected cost 55, got %v", got)
		}
		if got := state.MPTRental.Phases[0].CustomLightAndDrumItems[0].Quantity; got != 10 {
			t.Fatalf("other properties must survive, got quantity %v", got)
		}

		next := Reduce(state, actions.UpdateLightAndDrumCustomItem{Phase: 0, ID: "ghost", Key: "cost", Value: 99})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("stale custom item id must leave the state untouched")
		}
	})

	t.Run("delete removes by id and out-of-range phases are no-ops", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddLightAndDrumCustomItem{Phase: 0, Item: entities.CustomLightAndDrumItem{ID: "cust-1", Quantity: 1}})
		state = Reduce(state, actions.AddLightAndDrumCustomItem{Phase: 0, Item: entities.CustomLightAndDrumItem{ID: "cust-2", Quantity: 2}})

		state = Reduce(state, actions.DeleteLightAndDrumCustomItem{Phase: 0, ID: "cust-1"})
		items := state.MPTRental.Phases[0].CustomLightAndDrumItems
		if len(items) != 1 || items[0].ID != "cust-2" {
			t.Fatalf("expected cust-2 to survive, got %+v", items)
		}

		next := Reduce(state, actions.DeleteLightAndDrumCustomItem{Phase: 7, ID: "cust-2"})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("out-of-range phase must leave the state untouched")
		}
	})
}

func TestReduce_RentalItems(t *testing.T) {
	t.Run("update patches one field by index", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddRentalItem{Item: entities.EquipmentRentalItem{
			Name: "Arrow Board", Quantity: 2, Months: 3, RentPrice: 500,
		}})

		state = Reduce(state, actions.UpdateRentalItem{Index: 0, Key: "months", Value: 6.0})
		if got := state.EquipmentRental[0].Months; got != 6 {
			t.Fatalf("expected months 6, got %v", got)
		}

		state = Reduce(state, actions.UpdateRentalItem{Index: 0, Key: "reRentForCurrentJob", Value: true})
		if !state.EquipmentRental[0].ReRentForCurrentJob {
			t.Fatalf("expected re-rent flag to be set")
		}

		state = Reduce(state, actions.UpdateRentalItem{Index: 0, Key: "name", Value: "Message Board"})
		if got := state.EquipmentRental[0].Name; got != "Message Board" {
			t.Fatalf("expected renamed item, got %q", got)
		}
	})

	t.Run("out-of-range indexes are no-ops", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddRentalItem{Item: entities.EquipmentRentalItem{Name: "Arrow Board", Quantity: 1}})

		for _, index := range []int{-1, 1, 10} {
			next := Reduce(state, actions.UpdateRentalItem{Index: index, Key: "quantity", Value: 9.0})
			if !reflect.DeepEqual(state, next) {
				t.Fatalf("update index %d must leave the state untouched", index)
			}
			next = Reduce(state, actions.DeleteRentalItem{Index: index})
			if !reflect.DeepEqual(state, next) {
				t.Fatalf("delete index %d must leave the state untouched", index)
			}
		}
	})

	t.Run("delete removes by index", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddRentalItem{Item: entities.EquipmentRentalItem{Name: "Arrow Board"}})
		state = Reduce(state, actions.AddRentalItem{Item: entities.EquipmentRentalItem{Name: "TMA"}})

		state = Reduce(state, actions.DeleteRentalItem{Index: 0})
		if len(state.EquipmentRental) != 1 || state.EquipmentRental[0].Name != "TMA" {
			t.Fatalf("expected TMA to survive, got %+v", state.EquipmentRental)
		}
	})
}

func TestReduce_Flagging(t *testing.T) {
	t.Run("dotted keys address the lump-sum attachments", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.UpdateFlagging{Key: "tma.includeInLumpSum", Value: true})
		state = Reduce(state, actions.UpdateFlagging{Key: "arrowBoards.quantity", Value: 2.0})
		state = Reduce(state, actions.UpdateFlagging{Key: "arrowBoards.cost", Value: 350.0})

		if !state.Flagging.TMA.IncludeInLumpSum {
			t.Fatalf("expected tma lump-sum flag to be set")
		}
		if state.Flagging.ArrowBoards.Quantity != 2 || state.Flagging.ArrowBoards.Cost != 350 {
			t.Fatalf("arrow board attachment not updated: %+v", state.Flagging.ArrowBoards)
		}
	})

	t.Run("flat keys clamp negatives and unknown keys are no-ops", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.UpdateFlagging{Key: "personnel", Value: -3.0})
		if state.Flagging.Personnel != 0 {
			t.Fatalf("negative personnel should clamp to 0, got %v", state.Flagging.Personnel)
		}

		next := Reduce(state, actions.UpdateFlagging{Key: "crewSize", Value: 4.0})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("unknown flagging key must leave the state untouched")
		}
		next = Reduce(state, actions.UpdateFlagging{Key: "radar.quantity", Value: 1.0})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("unknown attachment parent must leave the state untouched")
		}
	})

	t.Run("service work updates do not leak into flagging", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.UpdateServiceWork{Key: "personnel", Value: 4.0})

		if state.ServiceWork.Personnel != 4 {
			t.Fatalf("expected service work personnel 4, got %v", state.ServiceWork.Personnel)
		}
		if state.Flagging.Personnel != 0 {
			t.Fatalf("flagging must be untouched, got %v", state.Flagging.Personnel)
		}
	})

	t.Run("delete resets the record to its defaults", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.UpdateFlagging{Key: "markupRate", Value: 35.0})
		state = Reduce(state, actions.DeleteFlagging{})

		if !reflect.DeepEqual(state.Flagging, entities.NewDefaultFlagging()) {
			t.Fatalf("expected default flagging record, got %+v", state.Flagging)
		}
	})
}

func TestReduce_PermanentSigns(t *testing.T) {
	t.Run("add defaults the markup from the shared item markup", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.UpdatePermanentSignsMarkup{Value: 30})
		state = Reduce(state, actions.AddPermanentSignsItem{Item: entities.PermanentSignItem{
			ItemNumber: "0901-0010", Description: "Ground mounted sign", Quantity: 4, UnitCost: 85,
		}})

		items := state.PermanentSigns.SignItems
		if len(items) != 1 {
			t.Fatalf("expected one permanent sign item, got %d", len(items))
		}
		if items[0].ID == "" {
			t.Fatalf("expected a generated id")
		}
		if items[0].MarkupPercentage != 30 {
			t.Fatalf("expected markup defaulted to 30, got %v", items[0].MarkupPercentage)
		}
	})

	t.Run("update patches one field by id and stale ids are no-ops", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddPermanentSignsItem{Item: entities.PermanentSignItem{
			ID: "perm-1", Quantity: 4, UnitCost: 85, MarkupPercentage: 25,
		}})

		state = Reduce(state, actions.UpdatePermanentSignsItem{ID: "perm-1", Field: "unitCost", Value: 92.5})
		if got := state.PermanentSigns.SignItems[0].UnitCost; got != 92.5 {
			t.Fatalf("expected unit cost 92.5, got %v", got)
		}

		next := Reduce(state, actions.UpdatePermanentSignsItem{ID: "ghost", Field: "quantity", Value: 9.0})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("stale permanent sign id must leave the state untouched")
		}
	})

	t.Run("delete removes by id", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddPermanentSignsItem{Item: entities.PermanentSignItem{ID: "perm-1", Quantity: 1}})
		state = Reduce(state, actions.AddPermanentSignsItem{Item: entities.PermanentSignItem{ID: "perm-2", Quantity: 1}})

		state = Reduce(state, actions.DeletePermanentSignsItem{ID: "perm-1"})
		items := state.PermanentSigns.SignItems
		if len(items) != 1 || items[0].ID != "perm-2" {
			t.Fatalf("expected perm-2 to survive, got %+v", items)
		}
	})
}
