package menu

// sampleItems is the fixed dish catalog served by the menu subsystem.
func sampleItems() []Item {
	return []Item{
		// 川菜
		{
			ID:          "1",
			Name:        "宫保鸡丁",
			Description: "经典川菜，选用新鲜鸡胸肉，配以花生、干辣椒爆炒，鸡肉嫩滑，花生香脆，甜辣适中",
			Price:       38.0,
			Category:    "川菜",
			Ingredients: []string{"鸡胸肉", "花生", "干辣椒", "葱姜蒜", "生抽", "老抽", "糖", "醋"},
			Allergens:   []string{"花生"},
			Rating:      4.8,
		},
		{
			ID:          "2",
			Name:        "麻婆豆腐",
			Description: "嫩滑豆腐配麻辣肉末，使用正宗郫县豆瓣酱，麻辣鲜香，下饭神器",
			Price:       28.0,
			Category:    "川菜",
			Ingredients: []string{"嫩豆腐", "猪肉末", "郫县豆瓣酱", "花椒", "辣椒", "蒜末", "葱花"},
			Allergens:   []string{},
			Rating:      4.6,
		},
		{
			ID:          "3",
			Name:        "水煮鱼",
			Description: "鲜嫩鱼片配麻辣汤底，选用新鲜草鱼，配以豆芽、辣椒、花椒，麻辣鲜香",
			Price:       68.0,
			Category:    "川菜",
			Ingredients: []string{"草鱼", "豆芽", "辣椒", "花椒", "蒜末", "葱花", "香菜"},
			Allergens:   []string{"鱼类"},
			Rating:      4.7,
		},
		{
			ID:          "4",
			Name:        "回锅肉",
			Description: "肥而不腻，入口即化，选用五花肉，配以青椒、蒜苗爆炒",
			Price:       42.0,
			Category:    "川菜",
			Ingredients: []string{"五花肉", "青椒", "蒜苗", "豆瓣酱", "生抽", "老抽"},
			Allergens:   []string{},
			Rating:      4.5,
		},
		// 粤菜
		{
			ID:          "5",
			Name:        "清蒸鲈鱼",
			Description: "新鲜鲈鱼清蒸，保持原汁原味，配以姜丝、葱丝、蒸鱼豉油，鱼肉鲜嫩",
			Price:       88.0,
			Category:    "粤菜",
			Ingredients: []string{"鲈鱼", "姜丝", "葱丝", "蒸鱼豉油", "料酒", "盐"},
			Allergens:   []string{"鱼类"},
			IsSeasonal:  true,
			Rating:      4.9,
		},
		{
			ID:          "6",
			Name:        "白切鸡",
			Description: "选用三黄鸡，配以姜葱酱，鸡肉嫩滑，皮爽肉嫩",
			Price:       58.0,
			Category:    "粤菜",
			Ingredients: []string{"三黄鸡", "姜丝", "葱丝", "生抽", "香油", "盐"},
			Allergens:   []string{},
			Rating:      4.7,
		},
		{
			ID:          "7",
			Name:        "叉烧肉",
			Description: "选用五花肉，配以叉烧酱腌制，烤制而成，甜咸适中，肉质鲜嫩",
			Price:       48.0,
			Category:    "粤菜",
			Ingredients: []string{"五花肉", "叉烧酱", "蜂蜜", "生抽", "老抽", "料酒"},
			Allergens:   []string{},
			Rating:      4.6,
		},
		{
			ID:          "8",
			Name:        "虾仁炒蛋",
			Description: "新鲜虾仁配以嫩滑鸡蛋，简单美味，营养丰富",
			Price:       32.0,
			Category:    "粤菜",
			Ingredients: []string{"虾仁", "鸡蛋", "葱花", "盐", "料酒", "生抽"},
			Allergens:   []string{"虾类", "鸡蛋"},
			Rating:      4.4,
		},
		// 鲁菜
		{
			ID:          "9",
			Name:        "糖醋里脊",
			Description: "外酥内嫩，酸甜可口，选用里脊肉，配以糖醋汁",
			Price:       42.0,
			Category:    "鲁菜",
			Ingredients: []string{"里脊肉", "淀粉", "糖", "醋", "番茄酱", "生抽"},
			Allergens:   []string{},
			Rating:      4.8,
		},
		{
			ID:          "10",
			Name:        "九转大肠",
			Description: "选用猪大肠，经过九道工序制作，口感独特",
			Price:       58.0,
			Category:    "鲁菜",
			Ingredients: []string{"猪大肠", "葱姜蒜", "八角", "桂皮", "生抽", "老抽"},
			Allergens:   []string{},
			Rating:      4.3,
		},
		// 本帮菜
		{
			ID:          "11",
			Name:        "红烧肉",
			Description: "肥而不腻，入口即化，选用五花肉，配以酱油、糖、料酒，上海本帮菜的代表作",
			Price:       52.0,
			Category:    "本帮菜",
			Ingredients: []string{"五花肉", "酱油", "糖", "料酒", "葱姜蒜", "八角"},
			Allergens:   []string{},
			Rating:      4.9,
		},
		{
			ID:          "12",
			Name:        "小笼包",
			Description: "皮薄馅多，汤汁丰富，选用猪肉馅，配以姜汁、高汤，上海名点",
			Price:       22.0,
			Category:    "点心",
			Ingredients: []string{"猪肉", "面粉", "姜汁", "高汤", "葱花", "盐"},
			Allergens:   []string{},
			Rating:      4.7,
		},
		{
			ID:          "13",
			Name:        "生煎包",
			Description: "底部酥脆，顶部松软，选用猪肉馅，配以葱花，上海经典早点",
			Price:       18.0,
			Category:    "点心",
			Ingredients: []string{"猪肉", "面粉", "葱花", "盐", "生抽", "料酒"},
			Allergens:   []string{},
			Rating:      4.6,
		},
		// 京菜
		{
			ID:          "14",
			Name:        "北京烤鸭",
			Description: "皮酥肉嫩，配甜面酱和葱丝，选用北京填鸭，经过特殊工艺烤制",
			Price:       158.0,
			Category:    "京菜",
			Ingredients: []string{"北京填鸭", "甜面酱", "葱丝", "薄饼", "黄瓜丝"},
			Allergens:   []string{},
			Rating:      4.9,
		},
		{
			ID:          "15",
			Name:        "炸酱面",
			Description: "选用手工面条，配以炸酱、黄瓜丝、豆芽，北京经典面食",
			Price:       28.0,
			Category:    "面食",
			Ingredients: []string{"手工面条", "炸酱", "黄瓜丝", "豆芽", "葱花"},
			Allergens:   []string{},
			Rating:      4.5,
		},
		// 湘菜
		{
			ID:          "16",
			Name:        "剁椒鱼头",
			Description: "选用新鲜鱼头，配以剁椒、蒜末，麻辣鲜香",
			Price:       78.0,
			Category:    "湘菜",
			Ingredients: []string{"鱼头", "剁椒", "蒜末", "姜丝", "葱花", "生抽"},
			Allergens:   []string{"鱼类"},
			Rating:      4.7,
		},
		{
			ID:          "17",
			Name:        "农家小炒肉",
			Description: "选用五花肉，配以青椒、蒜苗爆炒，香辣可口",
			Price:       38.0,
			Category:    "湘菜",
			Ingredients: []string{"五花肉", "青椒", "蒜苗", "辣椒", "生抽", "老抽"},
			Allergens:   []string{},
			Rating:      4.6,
		},
		// 苏菜
		{
			ID:          "18",
			Name:        "松鼠桂鱼",
			Description: "选用桂鱼，经过特殊刀工处理，炸制而成，形似松鼠，酸甜可口",
			Price:       98.0,
			Category:    "苏菜",
			Ingredients: []string{"桂鱼", "淀粉", "糖", "醋", "番茄酱", "生抽"},
			Allergens:   []string{"鱼类"},
			Rating:      4.8,
		},
		{
			ID:          "19",
			Name:        "清炒时蔬",
			Description: "选用当季新鲜蔬菜，清炒而成，营养丰富，口感清爽",
			Price:       18.0,
			Category:    "素菜",
			Ingredients: []string{"时令蔬菜", "蒜末", "盐", "生抽", "香油"},
			Allergens:   []string{},
			IsSeasonal:  true,
			Rating:      4.3,
		},
		// 汤品
		{
			ID:          "20",
			Name:        "酸菜鱼汤",
			Description: "选用新鲜鱼片，配以酸菜、辣椒，酸辣开胃",
			Price:       48.0,
			Category:    "汤品",
			Ingredients: []string{"鱼片", "酸菜", "辣椒", "蒜末", "葱花", "香菜"},
			Allergens:   []string{"鱼类"},
			Rating:      4.6,
		},
		{
			ID:          "21",
			Name:        "紫菜蛋花汤",
			Description: "选用紫菜、鸡蛋，简单美味，营养丰富",
			Price:       12.0,
			Category:    "汤品",
			Ingredients: []string{"紫菜", "鸡蛋", "葱花", "盐", "香油"},
			Allergens:   []string{"鸡蛋"},
			Rating:      4.2,
		},
		// 甜点
		{
			ID:          "22",
			Name:        "红豆沙汤圆",
			Description: "选用糯米粉制作，配以红豆沙馅，甜而不腻",
			Price:       16.0,
			Category:    "甜点",
			Ingredients: []string{"糯米粉", "红豆沙", "糖", "水"},
			Allergens:   []string{},
			Rating:      4.5,
		},
		{
			ID:          "23",
			Name:        "杨枝甘露",
			Description: "选用芒果、西米露，配以椰奶，清爽可口，港式经典甜点",
			Price:       22.0,
			Category:    "甜点",
			Ingredients: []string{"芒果", "西米露", "椰奶", "糖", "水"},
			Allergens:   []string{},
			IsSeasonal:  true,
			Rating:      4.7,
		},
	}
}
