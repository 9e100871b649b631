package main

import (
	"encoding/json"
	"fmt"

	"menu-ai-be/pkg/analyzer"
	"menu-ai-be/pkg/fallback"
	"menu-ai-be/pkg/lexicon"
	"menu-ai-be/pkg/session"

	"github.com/fatih/color"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Offline walkthrough of the analysis and fallback pipeline. No server, no
// model: feeds a scripted conversation through the same code paths the chat
// endpoint uses and prints what each stage produced.
func main() {
	color.Cyan("🚀 Conversation Pipeline Walkthrough\n")

	store := session.NewStore()

	script := []string{
		"你好",
		"我想吃辣的菜，推荐一下",
		"我对海鲜过敏，不能吃鱼",
		"我们3个人，预算不高",
		"川菜和湘菜有什么区别？",
	}

	var sessionId string
	for i, msg := range script {
		color.Yellow("\n[%d] User: %s", i+1, msg)

		// Resolve the session the same way the chat endpoint does.
		sess := store.GetOrCreate(sessionId, "demo-user")
		sessionId = sess.ID()

		intents := analyzer.ScoreIntents(msg)
		emotions := analyzer.ScoreEmotions(msg)
		ents := analyzer.ExtractEntities(msg)
		sess.RecordAnalysis(intents, emotions, ents)
		sess.ApplyPreferences(msg, ents)

		color.Green("Intent scores (primary: %s)", analyzer.Primary(intents, lexicon.IntentOrder))
		prettyPrint(intents)
		color.Green("Emotion scores (primary: %s)", analyzer.Primary(emotions, lexicon.EmotionOrder))
		prettyPrint(emotions)
		if !ents.IsEmpty() {
			color.Green("Entities")
			prettyPrint(ents)
		}

		reply := fallback.Respond(fallback.Input{
			Message:       msg,
			IntentScores:  intents,
			EmotionScores: emotions,
			Entities:      ents,
			Preferences:   sess.CurrentPreferences(),
		})
		color.Blue("Assistant: %s", reply)

		sess.AppendExchange(
			session.Turn{Role: session.RoleUser, Content: msg, IntentScores: intents, EmotionScores: emotions, Entities: &ents},
			session.Turn{Role: session.RoleAssistant, Content: reply},
		)
	}

	sess, _ := store.Get(sessionId)
	snap := sess.Snapshot()
	color.Cyan("\n📋 Final session state (%s)", snap.ID)
	color.Green("Accumulated preferences")
	prettyPrint(snap.Preferences)
	fmt.Printf("Interactions: %d, conversation length: %d\n", snap.InteractionCount, len(snap.Turns))
}
