package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Profile is a saved benchmark setup. Flags given on the command line
// override the values it holds.
type Profile struct {
	Emit struct {
		Subscribers []int  `toml:"subscribers"`
		Iterations  int    `toml:"iterations"`
		Collector   string `toml:"collector"`
	} `toml:"emit"`
	Insert struct {
		Subscribers int `toml:"subscribers"`
		Orders      int `toml:"orders"`
	} `toml:"insert"`
}

// LoadProfile reads a profile from path. An empty path yields an empty
// profile; a missing file is an error.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	if path == "" {
		return &p, nil
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile writes p to path.
func SaveProfile(path string, p *Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}
