package input

import (
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"letter", []byte("k"), "k"},
		{"upper case", []byte("E"), "e"},
		{"enter", []byte{'\r'}, "enter"},
		{"space", []byte{' '}, "space"},
		{"ctrl c", []byte{3}, "escape"},
		{"lone escape", []byte{0x1b}, "escape"},
		{"csi up", []byte{0x1b, '[', 'A'}, "arrow_up"},
		{"ss3 left", []byte{0x1b, 'O', 'D'}, "arrow_left"},
		{"csi right", []byte{0x1b, '[', 'C'}, "arrow_right"},
		{"unknown sequence", []byte{0x1b, '[', 'Z'}, ""},
		{"control byte", []byte{1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeKey(tt.in); got != tt.want {
				t.Errorf("DecodeKey(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"j", ActionMoveSouth},
		{"w", ActionMoveWest},
		{"l", ActionMoveEast},
		{"e", ActionInteract},
		{"enter", ActionInteract},
		{".", ActionWait},
		{"?", ActionHint},
		{"escape", ActionQuit},
		{"gamepad_dpad_down", ActionMoveSouth},
		{"f8", ActionDebugMapDump},
		{"x", ActionNone},
	}
	for _, tt := range tests {
		raw := RawInput{Device: DeviceKeyboard, Code: tt.code}
		if got := MapToIntent(NewDebouncedInput(raw)).Action; got != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestGetBindingsByActionSorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	want := []string{"arrow_up", "gamepad_dpad_up", "k", "n"}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, codes[i], want[i])
		}
	}
}
