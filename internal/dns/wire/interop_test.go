package wire

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/dns/dnsmessage"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// Cross-checks against the x/net reference codec: messages built there must
// decode here and vice versa.

func TestDecode_XNetCompressedResponse(t *testing.T) {
	name := dnsmessage.MustNewName("www.example.com.")
	b := dnsmessage.NewBuilder(nil, dnsmessage.Header{
		ID:               1234,
		Response:         true,
		RecursionDesired: true,
	})
	b.EnableCompression()
	require.NoError(t, b.StartQuestions())
	require.NoError(t, b.Question(dnsmessage.Question{
		Name:  name,
		Type:  dnsmessage.TypeA,
		Class: dnsmessage.ClassINET,
	}))
	require.NoError(t, b.StartAnswers())
	require.NoError(t, b.AResource(dnsmessage.ResourceHeader{
		Name:  name,
		Type:  dnsmessage.TypeA,
		Class: dnsmessage.ClassINET,
		TTL:   300,
	}, dnsmessage.AResource{A: [4]byte{192, 0, 2, 1}}))
	buf, err := b.Finish()
	require.NoError(t, err)

	msg, err := Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, uint16(1234), msg.Header.ID)
	assert.Equal(t, domain.PacketTypeResponse, msg.Header.Type)
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "www.example.com", msg.Questions[0].Name.String())
	require.Len(t, msg.Answers, 1)
	assert.Equal(t, "www.example.com", msg.Answers[0].Name.String(),
		"compressed owner name should expand to the question name")
	assert.Equal(t, netip.AddrFrom4([4]byte{192, 0, 2, 1}), msg.Answers[0].Data.(domain.AData).Addr)
}

func TestEncode_ParsedByXNet(t *testing.T) {
	m := domain.NewMessage(77)
	m.Query()
	m.Header.RecursionDesired = true
	require.NoError(t, m.Ask("example.com", domain.QTypeMX, domain.QClassIN))

	buf, err := Encode(*m)
	require.NoError(t, err)

	var p dnsmessage.Parser
	hdr, err := p.Start(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(77), hdr.ID)
	assert.False(t, hdr.Response)
	assert.True(t, hdr.RecursionDesired)

	q, err := p.Question()
	require.NoError(t, err)
	assert.Equal(t, "example.com.", q.Name.String())
	assert.Equal(t, dnsmessage.TypeMX, q.Type)
	assert.Equal(t, dnsmessage.ClassINET, q.Class)
}

func TestEncode_ResponseParsedByXNet(t *testing.T) {
	m := domain.NewMessage(78)
	require.NoError(t, m.Ask("example.com", domain.QTypeA, domain.QClassIN))
	rr, err := domain.NewResourceRecord(
		mustParseName("example.com"),
		domain.RRClassIN,
		600,
		domain.AData{Addr: netip.AddrFrom4([4]byte{203, 0, 113, 9})},
	)
	require.NoError(t, err)
	m.Answer(rr)

	buf, err := Encode(*m)
	require.NoError(t, err)

	var p dnsmessage.Parser
	hdr, err := p.Start(buf)
	require.NoError(t, err)
	assert.True(t, hdr.Response)

	require.NoError(t, p.SkipAllQuestions())
	ah, err := p.AnswerHeader()
	require.NoError(t, err)
	assert.Equal(t, "example.com.", ah.Name.String())
	assert.Equal(t, uint32(600), ah.TTL)

	a, err := p.AResource()
	require.NoError(t, err)
	assert.Equal(t, [4]byte{203, 0, 113, 9}, a.A)
}
