package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"course-outline-planner/internal/agent"
	"course-outline-planner/internal/auth"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/llmprovider"
	"course-outline-planner/pkg/metrics"
)

// Chat answers the transcript in two model rounds. The first round may
// request tool calls; every call is executed and the results are fed back
// for a second round without tools, whose text is the reply.
func (o *Orchestrator) Chat(ctx context.Context, sc model.Scope, transcript []agent.Message) (string, error) {
	if err := o.checkConnected(ctx, sc); err != nil {
		return "", err
	}

	messages := filterTranscript(transcript)
	if len(messages) == 0 {
		return "", agent.ErrEmptyTranscript
	}

	ctx = model.SetScopeToContext(ctx, sc)
	system := &llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: SystemPromptCalendar + buildTimeContext(o.now(), o.dateMath.Location())}},
	}

	first, err := o.generate(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          messages,
		Tools:             o.registry.ToFunctionDefinitions(),
	})
	if err != nil {
		return "", err
	}

	calls := first.Content.FunctionCalls()
	if len(calls) == 0 {
		o.l.Infof(ctx, "%s: %s", LogPrefixChat, LogMsgNoToolsNeeded)
		return first.Content.Text(), nil
	}

	results := make([]llmprovider.Part, 0, len(calls))
	for _, call := range calls {
		results = append(results, llmprovider.Part{
			FunctionResponse: &llmprovider.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: o.executeTool(ctx, call),
			},
		})
	}

	followUp := make([]llmprovider.Message, 0, len(messages)+2)
	followUp = append(followUp, messages...)
	followUp = append(followUp,
		llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: first.Content.Parts},
		llmprovider.Message{Role: llmprovider.RoleTool, Parts: results},
	)

	second, err := o.generate(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          followUp,
	})
	if err != nil {
		return "", err
	}

	if extra := second.Content.FunctionCalls(); len(extra) > 0 {
		o.l.Warnf(ctx, "%s: "+LogMsgIgnoredCalls, LogPrefixChat, len(extra))
	}
	o.l.Infof(ctx, "%s: "+LogMsgFinished, LogPrefixChat, len(calls))
	return second.Content.Text(), nil
}

// checkConnected fails with auth.ErrNotConnected before the model is contacted.
func (o *Orchestrator) checkConnected(ctx context.Context, sc model.Scope) error {
	if _, err := o.auth.TokenSource(ctx, sc); err != nil {
		if errors.Is(err, auth.ErrNotConnected) {
			return err
		}
		return fmt.Errorf("%w: %v", auth.ErrNotConnected, err)
	}
	return nil
}

func (o *Orchestrator) generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		o.l.Errorf(ctx, "%s: llm.GenerateContent: %v", LogPrefixChat, err)
		return nil, err
	}
	return resp, nil
}

// executeTool never fails: unknown tools and tool errors become
// {ok:false, error} results the model can read.
func (o *Orchestrator) executeTool(ctx context.Context, call llmprovider.FunctionCall) interface{} {
	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.metrics.RecordToolCall(call.Name, metrics.OutcomeUnknown)
		o.l.Warnf(ctx, "%s: unknown tool %s", LogPrefixChat, call.Name)
		return toolError(fmt.Sprintf(ErrMsgUnknownTool, call.Name))
	}

	if invalidArgs(call) {
		o.metrics.RecordToolCall(call.Name, metrics.OutcomeError)
		o.l.Warnf(ctx, "%s: "+LogMsgInvalidArgs, LogPrefixChat, call.Name, call.RawArgs)
		return toolError(fmt.Sprintf(ErrMsgInvalidArgs, call.Name, call.RawArgs))
	}

	o.l.Infof(ctx, "%s: "+LogMsgCallingTool, LogPrefixChat, call.Name, call.ID, call.Args)
	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.metrics.RecordToolCall(call.Name, metrics.OutcomeError)
		o.l.Errorf(ctx, "%s: "+LogMsgToolFailed, LogPrefixChat, call.Name, err)
		return toolError(fmt.Sprintf(ErrMsgToolFailed, call.Name, err))
	}

	if !agent.Succeeded(res) {
		o.metrics.RecordToolCall(call.Name, metrics.OutcomeError)
		o.l.Warnf(ctx, "%s: "+LogMsgToolReported, LogPrefixChat, call.Name)
		return res
	}

	o.metrics.RecordToolCall(call.Name, metrics.OutcomeOK)
	return res
}

// invalidArgs reports arguments the provider sent but that are not a JSON object.
func invalidArgs(call llmprovider.FunctionCall) bool {
	raw := strings.TrimSpace(call.RawArgs)
	return call.Args == nil && raw != "" && raw != "null"
}

func toolError(msg string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": msg}
}

// filterTranscript keeps user and assistant turns with content.
func filterTranscript(transcript []agent.Message) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(transcript))
	for _, m := range transcript {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		if role != llmprovider.RoleUser && role != llmprovider.RoleAssistant {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: m.Content}},
		})
	}
	return messages
}
