package lexicon

// Static keyword tables for the heuristic analyzers. Matching is plain
// case-insensitive substring containment, never tokenization: scores stay
// reproducible across runs and the tables remain editable without retraining
// anything.

// Order slices pin the iteration order used for primary-category tie-breaks
// and for the scalar first-match-wins attributes. Maps alone would make the
// winner nondeterministic.

var IntentOrder = []string{"recommendation", "information", "comparison", "health", "allergy"}

var IntentKeywords = map[string][]string{
	"recommendation": {"推荐", "想吃", "有什么", "建议", "来点", "吃什么"},
	"information":    {"怎么样", "介绍", "什么是", "价格", "多少钱", "热量"},
	"comparison":     {"比较", "对比", "区别", "哪个好", "还是"},
	"health":         {"健康", "营养", "低脂", "卡路里", "减肥"},
	"allergy":        {"过敏", "不能吃", "忌口"},
}

var EmotionOrder = []string{"positive", "negative", "neutral", "excited", "worried"}

var EmotionKeywords = map[string][]string{
	"positive": {"太棒", "好吃", "满意", "开心", "喜欢", "不错"},
	"negative": {"不喜欢", "难吃", "失望", "讨厌", "太差"},
	"neutral":  {"还可以", "一般", "还行"},
	"excited":  {"兴奋", "迫不及待", "期待", "等不及"},
	"worried":  {"担心", "害怕", "犹豫", "纠结"},
}

var CuisineOrder = []string{"chinese", "sichuan", "cantonese", "western", "japanese", "korean", "thai", "italian"}

var CuisineKeywords = map[string][]string{
	"chinese":   {"中餐", "中国菜", "家常菜"},
	"sichuan":   {"川菜", "四川菜", "麻辣"},
	"cantonese": {"粤菜", "广东菜", "早茶"},
	"western":   {"西餐", "牛排", "法餐"},
	"japanese":  {"日料", "日本菜", "寿司", "刺身"},
	"korean":    {"韩料", "韩国菜", "韩式"},
	"thai":      {"泰餐", "泰国菜", "冬阴功"},
	"italian":   {"意大利", "意餐", "意面", "披萨"},
}

var TasteOrder = []string{"spicy", "sweet", "sour", "salty", "light"}

var TasteKeywords = map[string][]string{
	"spicy": {"辣", "麻辣", "香辣"},
	"sweet": {"甜", "甜味"},
	"sour":  {"酸", "酸味"},
	"salty": {"咸", "重口味"},
	"light": {"清淡", "不辣", "少油"},
}

var DietaryOrder = []string{"vegetarian", "seafood_allergy", "peanut_allergy", "no_pork"}

var DietaryKeywords = map[string][]string{
	"vegetarian":      {"素食", "吃素", "不吃肉"},
	"seafood_allergy": {"海鲜过敏", "对海鲜"},
	"peanut_allergy":  {"花生过敏", "对花生"},
	"no_pork":         {"不吃猪肉", "清真"},
}

// Budget is a scalar attribute: categories are probed in BudgetOrder and the
// first match wins, so a message naming both ends of the range resolves to
// the cheaper one.
var BudgetOrder = []string{"low", "medium", "high"}

var BudgetKeywords = map[string][]string{
	"low":    {"便宜", "实惠", "经济", "50元"},
	"medium": {"适中", "中等", "100元"},
	"high":   {"高档", "豪华", "高端", "贵一点"},
}

var MealOrder = []string{"breakfast", "lunch", "dinner"}

var MealKeywords = map[string][]string{
	"breakfast": {"早餐", "早饭", "早上"},
	"lunch":     {"午餐", "午饭", "中午"},
	"dinner":    {"晚餐", "晚饭", "晚上", "夜宵"},
}

var CookingOrder = []string{"steamed", "stir_fried", "deep_fried", "roasted", "braised", "boiled"}

var CookingKeywords = map[string][]string{
	"steamed":    {"清蒸", "蒸的"},
	"stir_fried": {"爆炒", "小炒", "炒菜"},
	"deep_fried": {"油炸", "炸的", "酥脆"},
	"roasted":    {"烤的", "烧烤", "烤制"},
	"braised":    {"红烧", "炖菜", "焖"},
	"boiled":     {"水煮", "汤", "煮的"},
}

var OccasionOrder = []string{"romantic", "party", "business"}

var OccasionKeywords = map[string][]string{
	"romantic": {"约会", "浪漫", "情人节", "纪念日"},
	"party":    {"聚会", "派对", "生日"},
	"business": {"商务", "请客", "应酬", "宴请"},
}
