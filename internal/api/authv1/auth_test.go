package authv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestServiceDescriptorMatchesServiceDesc(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(AuthService_ServiceDesc.ServiceName))
	require.NoError(t, err)
	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)

	require.Equal(t, len(AuthService_ServiceDesc.Methods), sd.Methods().Len())
	for _, m := range AuthService_ServiceDesc.Methods {
		assert.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}

	rt := sd.Methods().ByName("RefreshToken")
	require.NotNil(t, rt)
	assert.Equal(t, (&RefreshTokenRequest{}).ProtoReflect().Descriptor().FullName(), rt.Input().FullName())
	assert.Equal(t, (&RefreshTokenResponse{}).ProtoReflect().Descriptor().FullName(), rt.Output().FullName())
}

func TestWireFormat(t *testing.T) {
	b, err := proto.Marshal(&RefreshTokenRequest{AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x01, 'a', 0x12, 0x01, 'r'}, b)

	// an unset refresh token is not sent at all
	b, err = proto.Marshal(&SessionResponse{Email: "e", AccessToken: "t"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x01, 'e', 0x1a, 0x01, 't'}, b)

	var req RevokeTokenRequest
	require.NoError(t, proto.Unmarshal([]byte{0x0a, 0x02, 'r', '1'}, &req))
	assert.Equal(t, "r1", req.GetToken())
}
