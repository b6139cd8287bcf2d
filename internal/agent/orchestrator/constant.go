package orchestrator

// Log prefixes
const (
	LogPrefixChat = "internal.agent.orchestrator.Chat"
)

// Time context template
const (
	TimeContextTemplate = `

[CURRENT TIME CONTEXT]
- Timezone: %s
- Now: %s (%s)
- This week: %s to %s
- Tomorrow: %s

Resolve relative dates ("this week", "tomorrow", "next Monday") against the
context above. Send datetimes to tools as ISO 8601 (YYYY-MM-DDTHH:MM:SS);
a value without an offset is read in the timezone above.`
)

// System prompt
const (
	SystemPromptCalendar = `You are a calendar assistant for a student whose course outlines have
been synced into Google Calendar. You can list, create, reschedule and
delete events using the provided tools.

Rules:
- Before changing or deleting an event, find it with list_calendar_events
  and use the id it returns. Never invent event ids.
- When several events match the user's description, act on all of them only
  if the user clearly asked for that; otherwise ask which one they mean.
- Keep the original duration when rescheduling unless the user gives a new end.
- For recurring study sessions, pass an RFC 5545 rule such as
  FREQ=WEEKLY;BYDAY=MO,WE;COUNT=10 as recurrence_rule.
- After using tools, reply with a short summary of what changed, including
  dates and times. If a tool reports an error, say so plainly.`
)

// Error messages
const (
	ErrMsgUnknownTool = "Unknown tool %s"
	ErrMsgToolFailed  = "Tool %s failed: %v"
	ErrMsgInvalidArgs = "Tool %s received invalid arguments: %s"
)

// Log messages
const (
	LogMsgCallingTool   = "calling tool %s (id=%s) with args: %+v"
	LogMsgToolFailed    = "tool %s failed: %v"
	LogMsgToolReported  = "tool %s reported a failure"
	LogMsgInvalidArgs   = "tool %s called with invalid arguments: %q"
	LogMsgIgnoredCalls  = "ignoring %d tool call(s) requested in the follow-up turn"
	LogMsgFinished      = "finished with %d tool call(s)"
	LogMsgNoToolsNeeded = "answered without tools"
)
