package scene

import (
	"testing"

	"github.com/waterfx/scene/internal/config"
	"github.com/waterfx/scene/internal/core/vmath"
)

func TestNewSpawnsFixedEntities(t *testing.T) {
	cfg := config.Defaults()
	s := New(cfg)

	if !s.World.Alive(s.Avatar) || !s.World.Alive(s.Target) || !s.World.Alive(s.Camera) {
		t.Fatal("fixed entities should be alive after setup")
	}
	if !s.Avatars.Has(s.Avatar) || !s.Targets.Has(s.Target) || !s.Cameras.Has(s.Camera) {
		t.Fatal("marker components missing")
	}

	avatarTr, _ := s.Transforms.Get(s.Avatar)
	if avatarTr.Position != vmath.New(0, 0.5, 0) {
		t.Errorf("avatar start = %v", avatarTr.Position)
	}
	targetTr, _ := s.Transforms.Get(s.Target)
	if targetTr.Position != vmath.New(5, 0.5, 5) {
		t.Errorf("target start = %v", targetTr.Position)
	}
	cameraTr, _ := s.Transforms.Get(s.Camera)
	if cameraTr.Position != vmath.New(0, 5, 10) {
		t.Errorf("camera start = %v", cameraTr.Position)
	}
	if s.LiveSkillCount() != 0 {
		t.Errorf("fresh scene has %d skills", s.LiveSkillCount())
	}
}

func TestAvatarPosition(t *testing.T) {
	s := New(config.Defaults())

	pos, ok := s.AvatarPosition()
	if !ok || pos != vmath.New(0, 0.5, 0) {
		t.Fatalf("AvatarPosition = %v, %v", pos, ok)
	}

	s.World.MarkDestroyed(s.Avatar)
	s.World.FlushDestroyed()
	if _, ok := s.AvatarPosition(); ok {
		t.Fatal("AvatarPosition should report absence after destroy")
	}
}
