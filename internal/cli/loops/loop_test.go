package loops

import (
	"strings"
	"testing"

	"github.com/julianstephens/score100/internal/cli/clitest"
	"github.com/julianstephens/score100/internal/constants"
)

func TestLoopListShowsSeed(t *testing.T) {
	env := clitest.New(t, clitest.At(8, 0))

	if err := (&LoopListCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	out := env.Out.String()
	for _, name := range []string{"Hydrate", "Meditate", "No Screen"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in output:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "0 of 3 checked today") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestLoopAddCmd(t *testing.T) {
	tests := []struct {
		name     string
		cmd      LoopAddCmd
		wantName string
		wantTime string
		wantErr  bool
	}{
		{name: "placeholder", cmd: LoopAddCmd{}, wantName: constants.DefaultLoopItemName, wantTime: constants.DefaultLoopItemTime},
		{name: "named", cmd: LoopAddCmd{Name: "Stretch", Time: "6:15 am"}, wantName: "Stretch", wantTime: "06:15 AM"},
		{name: "time only", cmd: LoopAddCmd{Time: "21:00"}, wantName: constants.DefaultLoopItemName, wantTime: "09:00 PM"},
		{name: "bad time", cmd: LoopAddCmd{Name: "Stretch", Time: "later"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := clitest.New(t, clitest.At(8, 0))
			before := len(env.Ctx.Day.LoopItems())

			err := tt.cmd.Run(env.Ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoopAddCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			items := env.Ctx.Day.LoopItems()
			if tt.wantErr {
				if len(items) != before {
					t.Errorf("loop changed on error: %d -> %d", before, len(items))
				}
				return
			}
			if len(items) != before+1 {
				t.Fatalf("expected %d items, got %d", before+1, len(items))
			}
			last := items[len(items)-1]
			if last.ID != "id-1" || last.Name != tt.wantName || last.Time != tt.wantTime {
				t.Errorf("added %+v, want id-1 %q %q", last, tt.wantName, tt.wantTime)
			}
		})
	}
}

func TestLoopEditDeleteCheck(t *testing.T) {
	env := clitest.New(t, clitest.At(8, 0))

	if err := (&LoopEditCmd{Item: "1", Name: "  Drink water  "}).Run(env.Ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	first := env.Ctx.Day.LoopItems()[0]
	if first.Name != "Drink water" || first.Time != "06:00 AM" {
		t.Errorf("edited item = %+v", first)
	}

	if err := (&LoopEditCmd{Item: "1", Name: "   "}).Run(env.Ctx); err == nil {
		t.Error("expected error for blank name")
	}

	if err := (&LoopCheckCmd{Item: first.ID}).Run(env.Ctx); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !env.Ctx.Day.IsChecked(first.ID) {
		t.Error("expected item checked")
	}
	if err := (&LoopCheckCmd{Item: first.ID}).Run(env.Ctx); err != nil {
		t.Fatalf("uncheck failed: %v", err)
	}
	if env.Ctx.Day.IsChecked(first.ID) {
		t.Error("expected item unchecked after second toggle")
	}

	if err := (&LoopDeleteCmd{Item: first.ID}).Run(env.Ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	for _, item := range env.Ctx.Day.LoopItems() {
		if item.ID == first.ID {
			t.Errorf("item %s still present after delete", first.ID)
		}
	}

	if err := (&LoopDeleteCmd{Item: "nope"}).Run(env.Ctx); err == nil {
		t.Error("expected error deleting unknown item")
	}
}
