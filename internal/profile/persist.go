package profile

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveProfile writes the profile to path with gob encoding. Non-finite
// log ratios survive the round trip.
func SaveProfile(p *Profile, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create profile file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(p); err != nil {
		return fmt.Errorf("unable to encode profile: %v", err)
	}
	return nil
}

// LoadProfile reads a profile written by SaveProfile.
func LoadProfile(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open profile file: %v", err)
	}
	defer file.Close()

	var p Profile
	if err := gob.NewDecoder(file).Decode(&p); err != nil {
		return nil, fmt.Errorf("unable to decode profile: %v", err)
	}
	return &p, nil
}
