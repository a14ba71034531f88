package internal

import (
	"reflect"
	"testing"
)

func TestParseNames(t *testing.T) {
	type args struct {
		arg string
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr bool
	}{
		{
			name: "single name",
			args: args{"Orange"},
			want: []string{"Orange"},
		},
		{
			name: "multiple names",
			args: args{"Orange Blue Red"},
			want: []string{"Orange", "Blue", "Red"},
		},
		{
			name: "single quoted multi word name",
			args: args{"'Forest Green' Orange"},
			want: []string{"Forest Green", "Orange"},
		},
		{
			name: "double quoted multi word name",
			args: args{`"Almost Black" "Baby Blue"`},
			want: []string{"Almost Black", "Baby Blue"},
		},
		{
			name: "empty argument",
			args: args{""},
			want: nil,
		},
		{
			name:    "unbalanced quote",
			args:    args{`"Almost Black`},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNames(tt.args.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseNames() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
