package wire

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnswire/dnswire/internal/dns/domain"
)

// responseWithCompression is a hand-built response for "www.example.com A"
// whose answer owner name is a pointer back into the question section.
func responseWithCompression() []byte {
	msg := []byte{
		0x04, 0xD2, // id 1234
		0x81, 0x80, // response, RD, RA
		0, 1, 0, 1, 0, 0, 0, 0,
	}
	// question at offset 12
	msg = append(msg, 3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0)
	msg = append(msg, 0, 1, 0, 1)
	// answer owner is a pointer to the question name
	msg = append(msg, 0xC0, 12)
	msg = append(msg, 0, 1, 0, 1) // TYPE A, CLASS IN
	msg = append(msg, 0, 0, 1, 44) // TTL 300
	msg = append(msg, 0, 4)
	msg = append(msg, 93, 184, 216, 34)
	return msg
}

func TestDecode_ResponseWithCompression(t *testing.T) {
	msg, err := Decode(responseWithCompression())
	require.NoError(t, err)

	assert.Equal(t, uint16(1234), msg.Header.ID)
	assert.Equal(t, domain.PacketTypeResponse, msg.Header.Type)
	assert.True(t, msg.Header.RecursionDesired)
	assert.True(t, msg.Header.RecursionAvailable)

	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "www.example.com", msg.Questions[0].Name.String())
	assert.Equal(t, domain.QTypeA, msg.Questions[0].Type)

	require.Len(t, msg.Answers, 1)
	rr := msg.Answers[0]
	assert.Equal(t, "www.example.com", rr.Name.String(), "owner name pointer should expand against the question")
	assert.Equal(t, uint32(300), rr.TTL)
	require.IsType(t, domain.AData{}, rr.Data)
	assert.Equal(t, netip.AddrFrom4([4]byte{93, 184, 216, 34}), rr.Data.(domain.AData).Addr)

	assert.Empty(t, msg.Authorities)
	assert.Empty(t, msg.Additionals)
}

func TestDecode_ShortMessage(t *testing.T) {
	_, err := Decode([]byte{0x04, 0xD2, 0x01})
	assert.ErrorIs(t, err, ErrShortMessage)
}

func TestDecode_CountPastBuffer(t *testing.T) {
	// Header claims one question but the buffer ends after the header.
	buf := make([]byte, 12)
	buf[5] = 1
	_, err := Decode(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteName)
	assert.Contains(t, err.Error(), "question 0")
}

func TestDecode_BadRecordAborts(t *testing.T) {
	// Valid question followed by an answer with an unregistered type; the
	// whole decode fails rather than returning the partial message.
	msg := responseWithCompression()
	msg[35] = 0
	msg[36] = 99

	_, err := Decode(msg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnregisteredType)
	assert.Contains(t, err.Error(), "answer record 0")
}

func TestEncodeDecode_BuiltQuery(t *testing.T) {
	q := domain.NewMessage(1234)
	q.Query()
	q.Header.RecursionDesired = true
	require.NoError(t, q.Ask("example.com", domain.QTypeA, domain.QClassIN))

	buf, err := Encode(*q)
	require.NoError(t, err)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, q.Header, got.Header)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "example.com", got.Questions[0].Name.String())
	assert.Equal(t, domain.QTypeA, got.Questions[0].Type)
	assert.Equal(t, domain.QClassIN, got.Questions[0].Class)
}

func TestEncodeDecode_BuiltResponse(t *testing.T) {
	m := domain.NewMessage(99)
	require.NoError(t, m.Ask("example.com", domain.QTypeMX, domain.QClassIN))

	mx, err := domain.NewResourceRecord(
		mustParseName("example.com"),
		domain.RRClassIN,
		3600,
		domain.MXData{Preference: 10, Exchange: mustParseName("mail.example.com")},
	)
	require.NoError(t, err)
	m.Answer(mx)

	ns, err := domain.NewResourceRecord(
		mustParseName("example.com"),
		domain.RRClassIN,
		86400,
		domain.NSData{Name: mustParseName("ns1.example.com")},
	)
	require.NoError(t, err)
	m.Authorize(ns)

	glue, err := domain.NewResourceRecord(
		mustParseName("ns1.example.com"),
		domain.RRClassIN,
		86400,
		domain.AData{Addr: netip.AddrFrom4([4]byte{192, 0, 2, 53})},
	)
	require.NoError(t, err)
	m.Add(glue)

	buf, err := Encode(*m)
	require.NoError(t, err)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, m.Header, got.Header)
	require.Len(t, got.Answers, 1)
	require.Len(t, got.Authorities, 1)
	require.Len(t, got.Additionals, 1)

	gotMX := got.Answers[0].Data.(domain.MXData)
	assert.Equal(t, uint16(10), gotMX.Preference)
	assert.Equal(t, "mail.example.com", gotMX.Exchange.String())
	assert.Equal(t, "ns1.example.com", got.Authorities[0].Data.(domain.NSData).Name.String())
	assert.Equal(t, netip.AddrFrom4([4]byte{192, 0, 2, 53}), got.Additionals[0].Data.(domain.AData).Addr)
}

func TestEncode_WKSAnswerFails(t *testing.T) {
	m := domain.NewMessage(7)
	wks, err := domain.NewResourceRecord(
		mustParseName("www"),
		domain.RRClassIN,
		300,
		domain.WKSData{Addr: netip.AddrFrom4([4]byte{10, 0, 0, 1}), Protocol: 6},
	)
	require.NoError(t, err)
	m.Answer(wks)

	_, err = Encode(*m)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
