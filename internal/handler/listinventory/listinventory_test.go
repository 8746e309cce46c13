// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package listinventory

import (
	"net/url"
	"testing"

	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

func TestListOptions(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    pantrydb.ListOptions
		wantErr bool
	}{
		{
			name:  "empty query",
			query: "",
			want:  pantrydb.ListOptions{},
		},
		{
			name:  "limit and prefix",
			query: "limit=5&q=mil",
			want:  pantrydb.ListOptions{Limit: 5, NamePrefix: "mil"},
		},
		{
			name:    "negative limit",
			query:   "limit=-1",
			wantErr: true,
		},
		{
			name:    "non-numeric limit",
			query:   "limit=abc",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("parsing query: %v", err)
			}
			opts, err := listOptions(values)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("listOptions: %v", err)
			}
			if opts != tc.want {
				t.Errorf("got %+v, want %+v", opts, tc.want)
			}
		})
	}
}
