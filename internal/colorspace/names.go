package colorspace

import "math"

type namedColor struct {
	hex  string
	name string
}

// namedColors is scanned in order; on equal distance the earlier entry wins.
var namedColors = []namedColor{
	{"#FF0000", "Crimson Red"},
	{"#FF4500", "Orange Red"},
	{"#FF6347", "Tomato"},
	{"#FF69B4", "Hot Pink"},
	{"#FF1493", "Deep Pink"},
	{"#FFC0CB", "Pink"},
	{"#FFB6C1", "Light Pink"},
	{"#FFA500", "Orange"},
	{"#FFD700", "Gold"},
	{"#FFFF00", "Yellow"},
	{"#FFFFE0", "Light Yellow"},
	{"#FFFACD", "Lemon Chiffon"},
	{"#FAFAD2", "Light Gold"},
	{"#FFE4B5", "Peach"},
	{"#FFDAB9", "Peach Puff"},
	{"#EEE8AA", "Pale Gold"},
	{"#F0E68C", "Khaki"},
	{"#BDB76B", "Dark Khaki"},
	{"#ADFF2F", "Green Yellow"},
	{"#7FFF00", "Chartreuse"},
	{"#7CFC00", "Lawn Green"},
	{"#00FF00", "Lime"},
	{"#32CD32", "Lime Green"},
	{"#00FA9A", "Spring Green"},
	{"#00FF7F", "Spring Green"},
	{"#90EE90", "Light Green"},
	{"#98FB98", "Pale Green"},
	{"#8FBC8F", "Dark Sea Green"},
	{"#228B22", "Forest Green"},
	{"#008000", "Green"},
	{"#006400", "Dark Green"},
	{"#9ACD32", "Yellow Green"},
	{"#6B8E23", "Olive Drab"},
	{"#808000", "Olive"},
	{"#556B2F", "Dark Olive"},
	{"#00FFFF", "Cyan"},
	{"#00CED1", "Dark Turquoise"},
	{"#40E0D0", "Turquoise"},
	{"#48D1CC", "Turquoise"},
	{"#AFEEEE", "Pale Turquoise"},
	{"#7FFFD4", "Aquamarine"},
	{"#B0E0E6", "Powder Blue"},
	{"#5F9EA0", "Cadet Blue"},
	{"#4682B4", "Steel Blue"},
	{"#6495ED", "Cornflower"},
	{"#00BFFF", "Sky Blue"},
	{"#1E90FF", "Dodger Blue"},
	{"#ADD8E6", "Light Blue"},
	{"#87CEEB", "Sky Blue"},
	{"#87CEFA", "Light Sky Blue"},
	{"#191970", "Midnight Blue"},
	{"#000080", "Navy"},
	{"#00008B", "Dark Blue"},
	{"#0000CD", "Medium Blue"},
	{"#0000FF", "Blue"},
	{"#4169E1", "Royal Blue"},
	{"#8A2BE2", "Blue Violet"},
	{"#4B0082", "Indigo"},
	{"#483D8B", "Dark Slate Blue"},
	{"#6A5ACD", "Slate Blue"},
	{"#7B68EE", "Medium Slate Blue"},
	{"#9370DB", "Medium Purple"},
	{"#8B008B", "Dark Magenta"},
	{"#9400D3", "Violet"},
	{"#9932CC", "Dark Orchid"},
	{"#BA55D3", "Medium Orchid"},
	{"#800080", "Purple"},
	{"#D8BFD8", "Thistle"},
	{"#DDA0DD", "Plum"},
	{"#EE82EE", "Violet"},
	{"#FF00FF", "Magenta"},
	{"#DA70D6", "Orchid"},
	{"#C71585", "Medium Violet Red"},
	{"#DB7093", "Pale Violet Red"},
	{"#FFF0F5", "Lavender Blush"},
	{"#FFE4E1", "Misty Rose"},
	{"#FFE4C4", "Bisque"},
	{"#FFDEAD", "Navajo White"},
	{"#F5DEB3", "Wheat"},
	{"#DEB887", "Burlywood"},
	{"#D2B48C", "Tan"},
	{"#BC8F8F", "Rosy Brown"},
	{"#F4A460", "Sandy Brown"},
	{"#DAA520", "Goldenrod"},
	{"#B8860B", "Dark Goldenrod"},
	{"#CD853F", "Peru"},
	{"#D2691E", "Chocolate"},
	{"#8B4513", "Saddle Brown"},
	{"#A0522D", "Sienna"},
	{"#A52A2A", "Brown"},
	{"#800000", "Maroon"},
	{"#FFFFFF", "White"},
	{"#FFFAFA", "Snow"},
	{"#F0FFF0", "Honeydew"},
	{"#F5FFFA", "Mint Cream"},
	{"#F0FFFF", "Azure"},
	{"#F0F8FF", "Alice Blue"},
	{"#F8F8FF", "Ghost White"},
	{"#F5F5F5", "White Smoke"},
	{"#FFF5EE", "Seashell"},
	{"#F5F5DC", "Beige"},
	{"#FDF5E6", "Old Lace"},
	{"#FFFAF0", "Floral White"},
	{"#FFFFF0", "Ivory"},
	{"#FAEBD7", "Antique White"},
	{"#FAF0E6", "Linen"},
	{"#FFF8DC", "Cornsilk"},
	{"#C0C0C0", "Silver"},
	{"#808080", "Gray"},
	{"#696969", "Dim Gray"},
	{"#708090", "Slate Gray"},
	{"#2F4F4F", "Dark Slate Gray"},
	{"#000000", "Black"},
}

var namedIndex = func() map[string]string {
	m := make(map[string]string, len(namedColors))
	for _, nc := range namedColors {
		m[nc.hex] = nc.name
	}
	return m
}()

// NearestColorName returns the table name for an exact match, otherwise the
// name of the entry closest to hex by Euclidean RGB distance.
func NearestColorName(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	if name, ok := namedIndex[upperHex(RGBToHex(c))]; ok {
		return name, nil
	}

	best := ""
	bestDist := math.Inf(1)
	for _, nc := range namedColors {
		ref, _ := HexToRGB(nc.hex)
		dr := float64(c.R) - float64(ref.R)
		dg := float64(c.G) - float64(ref.G)
		db := float64(c.B) - float64(ref.B)
		d := math.Sqrt(dr*dr + dg*dg + db*db)
		if d < bestDist {
			bestDist = d
			best = nc.name
		}
	}
	return best, nil
}
