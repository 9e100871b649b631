package fallback

import (
	"fmt"
	"strings"

	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/session"
)

// Threshold is the fixed score an intent or emotion category must clear to
// drive a branch. Not configurable; applied identically everywhere.
const Threshold = 0.3

// CatchAllReply is the terminal reply when no branch qualifies.
const CatchAllReply = "我是您的菜品推荐助手！您可以告诉我您想吃什么口味的菜，比如辣的、清淡的，或者中餐、西餐、日料等菜系，我会为您推荐合适的菜品。"

// Input bundles everything the decision tree may consult for one message.
type Input struct {
	Message       string
	IntentScores  map[string]float64
	EmotionScores map[string]float64
	Entities      analyzer.Entities
	Preferences   session.Preferences
}

// Respond walks the prioritized rule set and returns the first qualifying
// canned reply. Branch order is fixed: recommendation, information,
// comparison, health, allergy intents; then positive/negative/worried
// emotions; then the keyword phrase table; then the catch-all. No
// fallthrough once a branch qualifies.
func Respond(in Input) string {
	if in.IntentScores["recommendation"] > Threshold {
		return recommendationReply(in)
	}
	if in.IntentScores["information"] > Threshold {
		return "这道菜选用新鲜食材制作，营养均衡。如果您想了解某道菜的具体信息（价格、配料、做法），告诉我菜名就可以。"
	}
	if in.IntentScores["comparison"] > Threshold {
		return "各个菜系各有特色：川菜麻辣鲜香，粤菜清淡鲜美，日料注重原味。告诉我您在纠结哪几种，我帮您分析对比。"
	}
	if in.IntentScores["health"] > Threshold {
		return "注重健康的话，建议选择清蒸、白灼类的菜品，少油少盐。清蒸鲈鱼和清炒时蔬都是不错的选择。"
	}
	if in.IntentScores["allergy"] > Threshold {
		return "了解您的过敏情况很重要！请告诉我您对什么过敏，我会在推荐时避开含有相应过敏原的菜品。"
	}

	// Sentiment acknowledgement, checked in fixed order.
	if in.EmotionScores["positive"] > Threshold {
		return "很高兴您喜欢！如果还想尝试其他菜品，随时告诉我您的口味偏好。"
	}
	if in.EmotionScores["negative"] > Threshold {
		return "抱歉没能让您满意。告诉我您不喜欢的地方，我来换个方向为您推荐。"
	}
	if in.EmotionScores["worried"] > Threshold {
		return "别担心，我会根据您的口味把握好推荐的分寸。有任何顾虑都可以直接告诉我。"
	}

	if reply := phraseReply(in.Message); reply != "" {
		return reply
	}

	return CatchAllReply
}

// phraseEntry pairs a trigger keyword set with its canned reply. Entries are
// probed strictly in declaration order, first match wins.
type phraseEntry struct {
	keywords []string
	reply    string
}

var phraseTable = []phraseEntry{
	{[]string{"你好", "您好", "hi", "hello"}, "你好！我是菜品推荐助手，很高兴为您服务。想吃点什么？"},
	{[]string{"中餐", "中国菜"}, "中餐选择很丰富！川菜、粤菜、鲁菜、湘菜各有风味，您偏好哪个菜系？"},
	{[]string{"西餐", "牛排"}, "西餐方面可以考虑牛排、意面或者披萨，正式或休闲的场合都有合适的选择。"},
	{[]string{"日料", "寿司"}, "日料讲究新鲜和原味，寿司、刺身、天妇罗都值得一试。"},
	{[]string{"辣"}, "喜欢辣的话，川菜和湘菜是首选！宫保鸡丁、麻婆豆腐、剁椒鱼头都很下饭。"},
	{[]string{"清淡"}, "偏好清淡的话，推荐粤菜：清蒸鲈鱼、白切鸡，原汁原味又健康。"},
	{[]string{"推荐"}, "好的！告诉我您的口味偏好（辣的、清淡的）或想吃的菜系，我来为您挑几道菜。"},
}

func phraseReply(message string) string {
	lowered := strings.ToLower(message)
	for _, entry := range phraseTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return entry.reply
			}
		}
	}
	return ""
}

// recommendationReply builds a canned recommendation from whatever cuisine,
// taste and budget signals the message (or the accumulated preferences)
// carry.
func recommendationReply(in Input) string {
	cuisines := in.Entities.CuisineTypes
	if len(cuisines) == 0 {
		cuisines = in.Preferences.CuisinePreference
	}
	tastes := in.Entities.TastePreferences
	if len(tastes) == 0 {
		tastes = in.Preferences.TastePreferences
	}
	budget := in.Entities.BudgetRange
	if budget == "" {
		budget = in.Preferences.BudgetPreference
	}

	var b strings.Builder
	b.WriteString("根据您的需求，我来为您推荐：")
	if len(cuisines) > 0 {
		fmt.Fprintf(&b, "菜系方面可以试试%s；", strings.Join(translateAll(cuisines, cuisineNames), "、"))
	}
	if len(tastes) > 0 {
		fmt.Fprintf(&b, "口味上为您挑选%s的菜品；", strings.Join(translateAll(tastes, tasteNames), "、"))
	}
	if budget != "" {
		fmt.Fprintf(&b, "价位按%s安排；", budgetNames[budget])
	}
	b.WriteString("想看具体菜单的话，告诉我一声就行。")
	return b.String()
}

var cuisineNames = map[string]string{
	"chinese":   "中餐",
	"sichuan":   "川菜",
	"cantonese": "粤菜",
	"western":   "西餐",
	"japanese":  "日料",
	"korean":    "韩料",
	"thai":      "泰餐",
	"italian":   "意餐",
}

var tasteNames = map[string]string{
	"spicy": "辣味",
	"sweet": "甜味",
	"sour":  "酸味",
	"salty": "咸鲜",
	"light": "清淡",
}

var budgetNames = map[string]string{
	"low":    "经济实惠",
	"medium": "中等价位",
	"high":   "高档",
}

func translateAll(keys []string, names map[string]string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if name, ok := names[k]; ok {
			out = append(out, name)
		} else {
			out = append(out, k)
		}
	}
	return out
}
