package scene

const vertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vViewPos;

void main() {
    mat4 modelView = uView * uModel;
    vec4 viewPos = modelView * vec4(aPosition, 1.0);
    vNormal = mat3(modelView) * aNormal;
    vViewPos = viewPos.xyz;
    gl_Position = uProjection * viewPos;
}
`

const fragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vViewPos;

uniform vec4 uColor;
uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDiffuse;
uniform float uSpecular;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 l = normalize(uLightDir);
    vec3 v = normalize(-vViewPos);
    vec3 h = normalize(l + v);

    float diffuse = max(dot(n, l), 0.0) * uDiffuse;
    float specular = pow(max(dot(n, h), 0.0), 32.0) * uSpecular;
    vec3 color = uColor.rgb * (uAmbient + diffuse) + vec3(specular);

    FragColor = vec4(color, uColor.a);
}
`
