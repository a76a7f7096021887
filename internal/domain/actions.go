package domain

// RecoveryAction is an operator choice in the conflict recovery menu.
// Each action is bound to a single key.
type RecoveryAction rune

const (
	ActionAbort    RecoveryAction = 'a'
	ActionContinue RecoveryAction = 'c'
	ActionDiff     RecoveryAction = 'd'
	ActionList     RecoveryAction = 'l'
	ActionManual   RecoveryAction = 'm'
	ActionOurs     RecoveryAction = 'u'
	ActionSkip     RecoveryAction = 's'
	ActionTheirs   RecoveryAction = 't'
)

// Key returns the menu key of the action
func (a RecoveryAction) Key() string {
	return string(rune(a))
}

// ActionInfo describes a recovery action for menus and help text
type ActionInfo struct {
	Action      RecoveryAction
	Description string
	Label       string
}

// RecoveryActions is the canonical menu, in display order
var RecoveryActions = []ActionInfo{
	{Action: ActionDiff, Label: "(d)iff", Description: "Show colored diff of staged changes"},
	{Action: ActionList, Label: "(l)ist", Description: "List conflicted files again"},
	{Action: ActionContinue, Label: "(c)ontinue", Description: "Continue as is (git cherry-pick --continue --no-edit)"},
	{Action: ActionOurs, Label: "o(u)rs", Description: "Take the target branch version of every conflicted file"},
	{Action: ActionTheirs, Label: "(t)heirs", Description: "Take the picked commit version of every conflicted file"},
	{Action: ActionManual, Label: "(m)anual", Description: "Open conflicted files in the editor"},
	{Action: ActionSkip, Label: "(s)kip", Description: "Skip this commit"},
	{Action: ActionAbort, Label: "(a)bort", Description: "Abort the whole cherry-pick"},
}

// ParseRecoveryAction maps a menu key to its action
func ParseRecoveryAction(key string) (RecoveryAction, bool) {
	if len(key) != 1 {
		return 0, false
	}
	for _, info := range RecoveryActions {
		if info.Action.Key() == key {
			return info.Action, true
		}
	}
	return 0, false
}

// ResolveSide is the side a conflicted file is forced to
type ResolveSide string

const (
	SideOurs   ResolveSide = "ours"
	SideTheirs ResolveSide = "theirs"
)
