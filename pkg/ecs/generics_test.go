package ecs

import (
	"reflect"
	"testing"
)

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testSlotComponent{Slot: 7})

	comp, ok := GetComponent[*testSlotComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the component")
	}
	if comp.Slot != 7 {
		t.Errorf("Slot = %d, want 7", comp.Slot)
	}

	// 泛型与反射接口共享同一份存储
	if !em.HasComponent(id, reflect.TypeOf(&testSlotComponent{})) {
		t.Error("reflect HasComponent should see the generic component")
	}
}

func TestGenericGetMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	comp, ok := GetComponent[*testSpriteComponent](em, id)
	if ok || comp != nil {
		t.Error("missing component should return zero value and false")
	}

	if HasComponent[*testSpriteComponent](em, id) {
		t.Error("HasComponent should be false")
	}
}

func TestGenericRemove(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testSpriteComponent{Name: "cherry"})

	RemoveComponent[*testSpriteComponent](em, id)
	if HasComponent[*testSpriteComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestGenericQuery(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testSlotComponent{})
	AddComponent(em, id1, &testSpriteComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testSlotComponent{})

	if got := GetEntitiesWith1[*testSlotComponent](em); len(got) != 2 {
		t.Errorf("GetEntitiesWith1 returned %d entities, want 2", len(got))
	}

	got := GetEntitiesWith2[*testSlotComponent, *testSpriteComponent](em)
	if len(got) != 1 || got[0] != id1 {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", got, id1)
	}
}
