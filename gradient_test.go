package diffcolors

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestGradient(t *testing.T) {
	type args struct {
		base    string
		variant Variant
		levels  int
		name    string
		reverse bool
	}
	tests := []struct {
		name       string
		args       args
		wantName   string
		wantStops  []string
		wantLevels int
		wantErr    bool
	}{
		{
			name:       "orange light",
			args:       args{"Orange", VariantLight, 0, "", false},
			wantName:   "diff_Orange_light",
			wantStops:  []string{"#FFFFFF", "#FA693A"},
			wantLevels: 256,
		},
		{
			name:       "orange dark",
			args:       args{"Orange", VariantDark, 0, "", false},
			wantName:   "diff_Orange_dark",
			wantStops:  []string{"#FA693A", "#1E1E1E"},
			wantLevels: 256,
		},
		{
			name:       "orange full",
			args:       args{"Orange", VariantFull, 0, "", false},
			wantName:   "diff_Orange_full",
			wantStops:  []string{"#FFFFFF", "#FA693A", "#1E1E1E"},
			wantLevels: 256,
		},
		{
			name:       "orange full reversed",
			args:       args{"Orange", VariantFull, 0, "", true},
			wantName:   "diff_Orange_full_r",
			wantStops:  []string{"#1E1E1E", "#FA693A", "#FFFFFF"},
			wantLevels: 256,
		},
		{
			name:       "light reversed",
			args:       args{"Midnight", VariantLight, 0, "", true},
			wantName:   "diff_Midnight_light_r",
			wantStops:  []string{"#011F2E", "#FFFFFF"},
			wantLevels: 256,
		},
		{
			name:       "custom name and levels",
			args:       args{"Blue", VariantDark, 64, "ocean", false},
			wantName:   "ocean",
			wantStops:  []string{"#ABC9DB", "#1E1E1E"},
			wantLevels: 64,
		},
		{
			name:       "custom name keeps no reversed suffix",
			args:       args{"Blue", VariantDark, 0, "ocean", true},
			wantName:   "ocean",
			wantStops:  []string{"#1E1E1E", "#ABC9DB"},
			wantLevels: 256,
		},
		{
			name:       "negative levels fall back to default",
			args:       args{"Red", VariantFull, -5, "", false},
			wantName:   "diff_Red_full",
			wantStops:  []string{"#FFFFFF", "#891D1A", "#1E1E1E"},
			wantLevels: 256,
		},
		{
			name:       "two word base name",
			args:       args{"Forest Green", VariantLight, 0, "", false},
			wantName:   "diff_Forest Green_light",
			wantStops:  []string{"#FFFFFF", "#304937"},
			wantLevels: 256,
		},
		{
			name:    "unknown base",
			args:    args{"Vermilion", VariantFull, 0, "", false},
			wantErr: true,
		},
		{
			name:    "invalid variant",
			args:    args{"Orange", Variant("pastel"), 0, "", false},
			wantErr: true,
		},
		{
			name:    "empty variant",
			args:    args{"Orange", Variant(""), 0, "", false},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Gradient(tt.args.base, tt.args.variant, tt.args.levels, tt.args.name, tt.args.reverse)
			if (err != nil) != tt.wantErr {
				t.Errorf("Gradient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("Gradient().Name = %v, want %v", got.Name, tt.wantName)
			}
			if !reflect.DeepEqual(got.Stops, tt.wantStops) {
				t.Errorf("Gradient().Stops = %v, want %v", got.Stops, tt.wantStops)
			}
			if got.Levels != tt.wantLevels {
				t.Errorf("Gradient().Levels = %v, want %v", got.Levels, tt.wantLevels)
			}
			if got.Base != tt.args.base {
				t.Errorf("Gradient().Base = %v, want %v", got.Base, tt.args.base)
			}
			if got.Variant != tt.args.variant {
				t.Errorf("Gradient().Variant = %v, want %v", got.Variant, tt.args.variant)
			}
			if got.Reversed != tt.args.reverse {
				t.Errorf("Gradient().Reversed = %v, want %v", got.Reversed, tt.args.reverse)
			}
		})
	}
}

func TestGradientErrorKinds(t *testing.T) {
	_, err := Gradient("Vermilion", VariantFull, 0, "", false)
	var unknownErr *UnknownColorNameError
	if !errors.As(err, &unknownErr) {
		t.Errorf("unknown base error type = %T, want *UnknownColorNameError", err)
	}

	_, err = Gradient("Orange", Variant("pastel"), 0, "", false)
	var variantErr *InvalidVariantError
	if !errors.As(err, &variantErr) {
		t.Fatalf("invalid variant error type = %T, want *InvalidVariantError", err)
	}
	msg := err.Error()
	for _, v := range []string{"light", "dark", "full"} {
		if !strings.Contains(msg, v) {
			t.Errorf("variant error %q does not mention %q", msg, v)
		}
	}

	// the base name is validated before the variant
	_, err = Gradient("Vermilion", Variant("pastel"), 0, "", false)
	if !errors.As(err, &unknownErr) {
		t.Errorf("error type = %T, want *UnknownColorNameError first", err)
	}
}

func TestGradientDeterministic(t *testing.T) {
	first, err := Gradient("Plum", VariantFull, 128, "", true)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	second, err := Gradient("Plum", VariantFull, 128, "", true)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Gradient() calls differ: %+v vs %+v", first, second)
	}
}

func TestGradientStopsAreIndependent(t *testing.T) {
	spec, err := Gradient("Orange", VariantFull, 0, "", false)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	spec.Stops[0] = "#000000"

	fresh, err := Gradient("Orange", VariantFull, 0, "", false)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	if fresh.Stops[0] != "#FFFFFF" {
		t.Errorf("Gradient() stops share state across calls: %v", fresh.Stops)
	}
}

func TestVariants(t *testing.T) {
	want := []Variant{VariantLight, VariantDark, VariantFull}
	if got := Variants(); !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}
