package wealth

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeContract reads a HoldingContract from its json form.
func DecodeContract(r io.Reader) (HoldingContract, error) {
	var c HoldingContract
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return HoldingContract{}, fmt.Errorf("could not decode holding contract: %w", err)
	}
	c.Portfolio.Currency = c.Portfolio.Currency.Fill()
	c.Portfolio.Base = c.Portfolio.Base.Fill()
	for i, p := range c.Positions {
		c.Positions[i].Asset.Market.Currency = p.Asset.Market.Currency.Fill()
		for v, mv := range p.MoneyValues {
			mv.Currency = mv.Currency.Fill()
			p.MoneyValues[v] = mv
		}
	}
	return c, nil
}

// DecodeManualAssets reads a json object of bucket key to value.
func DecodeManualAssets(r io.Reader) (ManualAssets, error) {
	var m ManualAssets
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("could not decode manual assets: %w", err)
	}
	return m, nil
}

// LoadContract opens and decodes a contract file.
func LoadContract(path string) (HoldingContract, error) {
	f, err := os.Open(path)
	if err != nil {
		return HoldingContract{}, fmt.Errorf("could not open contract file %q: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeContract(f)
	if err != nil {
		return HoldingContract{}, fmt.Errorf("could not load contract file %q: %w", path, err)
	}
	return c, nil
}

// LoadRates opens and decodes an FX rates file, see DecodeRates.
func LoadRates(path, jsonPath string) (Rates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open rates file %q: %w", path, err)
	}
	defer f.Close()

	rates, err := DecodeRates(f, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("could not load rates file %q: %w", path, err)
	}
	return rates, nil
}

// LoadManualAssets opens and decodes a manual assets file.
func LoadManualAssets(path string) (ManualAssets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open manual assets file %q: %w", path, err)
	}
	defer f.Close()

	m, err := DecodeManualAssets(f)
	if err != nil {
		return nil, fmt.Errorf("could not load manual assets file %q: %w", path, err)
	}
	return m, nil
}
