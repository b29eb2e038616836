package templates

var builtinSprites = []Sprite{
	{
		Name:    "Heart",
		OriginY: 11,
		Key:     map[string]string{"r": "#ff0000", "w": "#ffffff"},
		Rows: []string{
			".rr...rr..",
			"rwrr.rrrr.",
			"rwrrrrrrr.",
			"rrrrrrrrr.",
			".rrrrrrr..",
			"..rrrrr...",
			"...rrr....",
			"....r.....",
		},
	},
	{
		Name:    "Smiley",
		OriginY: 10,
		Key:     map[string]string{"y": "#ffff00", "k": "#000000"},
		Rows: []string{
			"..yyyyyy..",
			".yyyyyyyy.",
			"yyykyykyyy",
			"yyykyykyyy",
			"yyyyyyyyyy",
			"ykyyyyyyky",
			"yykyyyykyy",
			".yykkkkyy.",
			"..yyyyyy..",
		},
	},
	{
		Name:    "Mushroom",
		OriginY: 9,
		Key:     map[string]string{"r": "#ff0000", "w": "#ffffff", "s": "#ffe0b0", "k": "#000000"},
		Rows: []string{
			"...rrrr...",
			"..rwwrrr..",
			".rwwrrwwr.",
			"rrrrrwwwrr",
			"rwwrrrwwrr",
			"wwwwrrrrrw",
			"..ssssss..",
			"..sksskss.",
			"..ssssss..",
			"...ssss...",
		},
	},
	{
		Name:    "Rocket",
		OriginY: 4,
		Key: map[string]string{
			"w": "#ffffff",
			"b": "#0000ff",
			"c": "#00ffff",
			"r": "#ff0000",
			"o": "#ff8800",
			"y": "#ffff00",
		},
		Rows: []string{
			"....rr....",
			"...rrrr...",
			"...wwww...",
			"..wwwwww..",
			"..wwccww..",
			"..wcbbcw..",
			"..wwccww..",
			"..wwwwww..",
			"..wwwwww..",
			"..wwbbww..",
			"..wwwwww..",
			".rwwwwwwr.",
			"rrwwwwwwrr",
			"rr.wwww.rr",
			"r...oo...r",
			"...oyyo...",
			"...oyyo...",
			"....yy....",
		},
	},
	{
		Name: "Tree",
		Key:  map[string]string{"g": "#00ff00", "d": "#008800", "t": "#884400", "y": "#ffff00"},
		Rows: []string{
			"",
			"",
			"",
			"",
			"",
			"",
			"....y.....",
			"....g.....",
			"...ggg....",
			"..ggdgg...",
			"...ggg....",
			"..gggdg...",
			".ggdgggg..",
			"...gggg...",
			"..ggggdg..",
			".gggdgggg.",
			"ggggggdggg",
			"....tt....",
			"....tt....",
			"....tt....",
		},
	},
}
