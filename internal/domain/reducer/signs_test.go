package reducer

import (
	"reflect"
	"testing"

	"bidworks/internal/domain/actions"
	"bidworks/internal/domain/entities"
)

func primarySign(id string, qty float64, structure entities.AssociatedStructure) entities.Sign {
	return entities.Sign{
		ID:                  id,
		Kind:                entities.SignKindPrimary,
		Designation:         "W20-1",
		Width:               48,
		Height:              48,
		Quantity:            qty,
		Sheeting:            entities.SheetingDG,
		AssociatedStructure: structure,
	}
}

func secondarySign(id, primaryID string) entities.Sign {
	return entities.Sign{
		ID:            id,
		Kind:          entities.SignKindSecondary,
		Designation:   "W20-1a",
		Quantity:      1,
		Sheeting:      entities.SheetingDG,
		PrimarySignID: primaryID,
	}
}

func TestReduce_AddSignDrivesEquipment(t *testing.T) {
	state := entities.NewDefaultEstimate()
	sign := primarySign("s-1", 5, entities.StructureFourFootTypeIII)
	sign.Cover = true
	sign.BLights = 2
	state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: sign})

	phase := state.MPTRental.Phases[0]
	if got := phase.Quantity(entities.EquipmentFourFootTypeIII); got != 5 {
		t.Fatalf("expected 5 barricades, got %v", got)
	}
	if got := phase.Quantity(entities.EquipmentCovers); got != 5 {
		t.Fatalf("expected 5 covers, got %v", got)
	}
	if got := phase.Quantity(entities.EquipmentBLights); got != 10 {
		t.Fatalf("expected 10 b-lights, got %v", got)
	}
	// 5 barricades at 10 bags each.
	if got := phase.Quantity(entities.EquipmentSandbag); got != 50 {
		t.Fatalf("expected 50 sandbags, got %v", got)
	}
}

func TestReduce_DeleteSignCascade(t *testing.T) {
	t.Run("primary delete removes secondaries and releases equipment", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 3, entities.StructureHStand)})
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: secondarySign("sec-1", "p-1")})
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: secondarySign("sec-2", "p-1")})
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-2", 1, entities.StructurePost)})

		state = Reduce(state, actions.DeleteMPTSign{SignID: "p-1"})

		phase := state.MPTRental.Phases[0]
		if len(phase.Signs) != 1 || phase.Signs[0].ID != "p-2" {
			t.Fatalf("expected only p-2 to survive, got %+v", phase.Signs)
		}
		if got := phase.Quantity(entities.EquipmentHStand); got != 0 {
			t.Fatalf("expected h-stands released, got %v", got)
		}
		if got := phase.Quantity(entities.EquipmentPost); got != 1 {
			t.Fatalf("expected p-2's post to remain, got %v", got)
		}
		if got := phase.Quantity(entities.EquipmentSandbag); got != 0 {
			t.Fatalf("expected sandbags re-derived to 0, got %v", got)
		}
	})

	t.Run("secondary delete leaves the primary alone", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 2, entities.StructurePost)})
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: secondarySign("sec-1", "p-1")})

		state = Reduce(state, actions.DeleteMPTSign{SignID: "sec-1"})

		phase := state.MPTRental.Phases[0]
		if len(phase.Signs) != 1 || phase.Signs[0].ID != "p-1" {
			t.Fatalf("expected p-1 to survive, got %+v", phase.Signs)
		}
		if got := phase.Quantity(entities.EquipmentPost); got != 2 {
			t.Fatalf("expected posts untouched, got %v", got)
		}
	})

	t.Run("unknown sign id is a no-op", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 2, entities.StructurePost)})
		next := Reduce(state, actions.DeleteMPTSign{SignID: "ghost"})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("expected unchanged state")
		}
	})
}

func TestReduce_UpdateSign(t *testing.T) {
	t.Run("quantity clamped and floor re-raised", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 2, entities.StructureHStand)})
		state = Reduce(state, actions.UpdateMPTSign{Phase: 0, SignID: "p-1", Key: "quantity", Value: -4.0})

		phase := state.MPTRental.Phases[0]
		if got := phase.Signs[0].Quantity; got != 0 {
			t.Fatalf("expected sign quantity 0, got %v", got)
		}
	})

	t.Run("raising sign quantity raises the equipment floor", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 2, entities.StructureHStand)})
		state = Reduce(state, actions.UpdateMPTSign{Phase: 0, SignID: "p-1", Key: "quantity", Value: 6.0})

		phase := state.MPTRental.Phases[0]
		if got := phase.Quantity(entities.EquipmentHStand); got != 6 {
			t.Fatalf("expected 6 h-stands, got %v", got)
		}
		if got := phase.Quantity(entities.EquipmentSandbag); got != 36 {
			t.Fatalf("expected 36 sandbags, got %v", got)
		}
	})

	t.Run("stale sign id is a no-op", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		next := Reduce(state, actions.UpdateMPTSign{Phase: 0, SignID: "ghost", Key: "quantity", Value: 1.0})
		if !reflect.DeepEqual(state, next) {
			t.Fatalf("expected unchanged state")
		}
	})
}

func TestReduce_BatchResetRefreshSigns(t *testing.T) {
	t.Run("batch replaces wholesale", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("old", 1, entities.StructureNone)})
		state = Reduce(state, actions.AddBatchMPTSigns{Phase: 0, Signs: []entities.Sign{
			primarySign("new-1", 2, entities.StructurePost),
			primarySign("new-2", 1, entities.StructureNone),
		}})

		phase := state.MPTRental.Phases[0]
		if len(phase.Signs) != 2 || phase.Signs[0].ID != "new-1" {
			t.Fatalf("expected wholesale replacement, got %+v", phase.Signs)
		}
		if got := phase.Quantity(entities.EquipmentPost); got != 2 {
			t.Fatalf("expected floor applied to batch, got %v", got)
		}
	})

	t.Run("reset clears signs and driven equipment", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 3, entities.StructureFourFootTypeIII)})
		state = Reduce(state, actions.ResetMPTPhaseSigns{Phase: 0})

		phase := state.MPTRental.Phases[0]
		if len(phase.Signs) != 0 {
			t.Fatalf("expected no signs, got %d", len(phase.Signs))
		}
		if got := phase.Quantity(entities.EquipmentFourFootTypeIII); got != 0 {
			t.Fatalf("expected barricades cleared, got %v", got)
		}
		if got := phase.Quantity(entities.EquipmentSandbag); got != 0 {
			t.Fatalf("expected sandbags cleared, got %v", got)
		}
	})

	t.Run("refresh discards manual surplus", func(t *testing.T) {
		state := entities.NewDefaultEstimate()
		state = Reduce(state, actions.AddMPTSign{Phase: 0, Sign: primarySign("p-1", 2, entities.StructurePost)})
		state = setQuantity(t, state, 0, entities.EquipmentPost, 9)
		state = Reduce(state, actions.RefreshMPTPhaseSigns{Phase: 0})

		if got := state.MPTRental.Phases[0].Quantity(entities.EquipmentPost); got != 2 {
			t.Fatalf("expected refresh back to 2 posts, got %v", got)
		}
	})
}

func TestReduce_CopyMPTRental(t *testing.T) {
	t.Run("secondary quantities re-synced from primaries", func(t *testing.T) {
		snapshot := entities.NewDefaultMPTRental()
		primary := primarySign("p-1", 7, entities.StructureNone)
		secondary := secondarySign("sec-1", "p-1")
		secondary.Quantity = 99 // stale persisted value
		snapshot.Phases[0].Signs = []entities.Sign{primary, secondary}

		state := Reduce(entities.NewDefaultEstimate(), actions.CopyMPTRental{MPTRental: snapshot})

		signs := state.MPTRental.Phases[0].Signs
		if signs[1].Quantity != 7 {
			t.Fatalf("expected secondary synced to 7, got %v", signs[1].Quantity)
		}
	})

	t.Run("empty phase payload falls back to defaults", func(t *testing.T) {
		state := Reduce(entities.NewDefaultEstimate(), actions.CopyMPTRental{MPTRental: entities.MPTRental{}})
		if len(state.MPTRental.Phases) != 1 {
			t.Fatalf("expected one default phase, got %d", len(state.MPTRental.Phases))
		}
		if state.MPTRental.DispatchFee != entities.DefaultDispatchFee {
			t.Fatalf("expected default dispatch fee, got %v", state.MPTRental.DispatchFee)
		}
	})
}
