package export

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
)

// codeProperties are the feature properties checked for an ISO alpha-3 code,
// in order.
var codeProperties = []string{"ISO_A3", "iso_a3", "ADM0_A3", "id"}

func featureCode(f *geojson.Feature) string {
	for _, key := range codeProperties {
		if s, ok := f.Properties[key].(string); ok && s != "" && s != "-99" {
			return s
		}
	}
	if s, ok := f.ID.(string); ok {
		return s
	}
	return ""
}

// MapGeoJSON annotates boundary features with each country's population and
// choropleth fill. Features without a value get the no-data fill. With no
// boundaries, one geometry-less feature per value is emitted instead.
func MapGeoJSON(values []projection.Value, boundaries []byte) ([]byte, error) {
	byCode := make(map[string]projection.Value, len(values))
	for _, v := range values {
		byCode[v.Code] = v
	}
	maxPop := projection.MaxPopulation(values)

	var fc *geojson.FeatureCollection
	if len(boundaries) == 0 {
		fc = geojson.NewFeatureCollection()
		for _, v := range values {
			f := geojson.NewFeature(nil)
			f.ID = v.Code
			f.SetProperty("ISO_A3", v.Code)
			fc.AddFeature(f)
		}
	} else {
		var err error
		fc, err = geojson.UnmarshalFeatureCollection(boundaries)
		if err != nil {
			return nil, fmt.Errorf("parse boundaries: %w", err)
		}
	}

	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		v, ok := byCode[featureCode(f)]
		if !ok {
			f.SetProperty("fill", string(palette.NoData))
			continue
		}
		f.SetProperty("name", v.Name)
		f.SetProperty("population", v.Population)
		f.SetProperty("fill", string(palette.Choropleth(v.Population, maxPop)))
	}
	return fc.MarshalJSON()
}
