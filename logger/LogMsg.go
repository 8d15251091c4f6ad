package logger

const SessionStartMsg = "session started: arena %.0fx%.0f, policy %s, tick %s"
const SessionStopMsg = "session stopped after %d ticks, score %d-%d"

const GoalScoredMsg = "%s side scored, ball left the arena at (%.1f, %.1f)"
const BallResetMsg = "ball reset to (%.1f, %.1f), velocity (%.1f, %.1f)"
const DegenerateVelocityMsg = "ball speed %.3g is below epsilon, treating as reset"
const PaddleHitMsg = "ball hit %s paddle at offset %.2f, target speed %.2f"
const StaleContactsMsg = "dropped %d contacts queued before a reset"

const MatchOverMsg = "match over: %s wins %d-%d"

const HostStartMsg = "starting %s host"
const HostStopMsg = "%s host stopped"

const SettingsLoadFailedMsg = "cannot load settings: %v"
const KeymapLoadFailedMsg = "cannot load keymap %s: %v"
const UnknownKeyMsg = "ignoring key %q, no binding"
