package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	commandSchema := compile("command.schema.json")
	frameSchema := compile("frame.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"1.0",
	  "client_name":"editor1"
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"1.0",
	  "world_id":"park1",
	  "world_params":{
	    "tick_rate_hz":10,
	    "grid_size":64,
	    "seed":12345,
	    "max_guests":500,
	    "entry_fee":20
	  }
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var toolCmd any
	_ = json.Unmarshal([]byte(`{
	  "type":"COMMAND",
	  "protocol_version":"1.0",
	  "cmd":"APPLY_TOOL",
	  "tool":{"kind":"building","x":10,"y":12,"building":"food_stand"}
	}`), &toolCmd)
	validate(commandSchema, toolCmd)

	var speedCmd any
	_ = json.Unmarshal([]byte(`{
	  "type":"COMMAND",
	  "protocol_version":"1.0",
	  "cmd":"SET_SPEED",
	  "speed":2
	}`), &speedCmd)
	validate(commandSchema, speedCmd)

	var frame any
	_ = json.Unmarshal([]byte(`{
	  "type":"FRAME",
	  "protocol_version":"1.0",
	  "tick":42,
	  "speed":1,
	  "clock":{"year":1,"month":3,"day":1,"hour":9,"minute":10.5,"text":"Year 1, Mar 1, 09:10"},
	  "cash":49970,
	  "rating":500,
	  "guests":[{
	    "id":0,"x":5,"y":0,"progress":0.4,"dir":"west","state":"walking",
	    "happiness":82.5,"has_hat":false,"shirt":3,"pants":1
	  }],
	  "coasters":[{
	    "id":1,"operating":true,
	    "trains":[{"state":"running","cars":[4.2,4.02,3.84]}]
	  }],
	  "digest":"deadbeef"
	}`), &frame)
	validate(frameSchema, frame)
}
